package audit

import (
	"context"
	"encoding/json"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/models"
)

type Logger struct {
	repo domain.Repository
}

func New(repo domain.Repository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.repo.CreateAuditLog(context.Background(), &entry)
}
