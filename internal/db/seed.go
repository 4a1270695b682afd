package db

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/models"
)

// Seed loads the salon catalog into an empty store. The catalog is fixed:
// services and staff are not editable through the API.
func Seed(ctx context.Context, repo domain.Repository) error {
	existing, err := repo.ListServices(ctx, domain.ServiceFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range seedServices {
		if err := repo.CreateService(ctx, &seedServices[i]); err != nil {
			return err
		}
	}

	for i := range seedStaff {
		if err := repo.CreateStaff(ctx, &seedStaff[i]); err != nil {
			return err
		}
	}

	return nil
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var seedServices = []models.Service{
	{
		Name:                "Full Color & Style",
		Description:         "Complete hair transformation with professional coloring and styling",
		Price:               decimal.RequireFromString("120.00"),
		DurationMin:         150,
		Category:            "hair",
		RequiresDownPayment: true,
		DownPaymentAmount:   amount("30.00"),
		ImageURL:            "https://images.unsplash.com/photo-1562322140-8baeececf3df?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
	},
	{
		Name:                "Highlights & Lowlights",
		Description:         "Add dimension with professional highlighting techniques",
		Price:               decimal.RequireFromString("90.00"),
		DurationMin:         120,
		Category:            "hair",
		RequiresDownPayment: true,
		DownPaymentAmount:   amount("25.00"),
		ImageURL:            "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
	},
	{
		Name:        "Gel Manicure",
		Description: "Long-lasting gel polish with cuticle care and nail shaping",
		Price:       decimal.RequireFromString("45.00"),
		DurationMin: 60,
		Category:    "nails",
		ImageURL:    "https://images.unsplash.com/photo-1604654894610-df63bc536371?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
	},
	{
		Name:        "Nail Art & Design",
		Description: "Custom nail art with intricate designs and premium finishes",
		Price:       decimal.RequireFromString("65.00"),
		DurationMin: 90,
		Category:    "nails",
		ImageURL:    "https://images.unsplash.com/photo-1610992015732-2449b76344bc?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
	},
}

var seedStaff = []models.Staff{
	{
		Name:        "Sarah Johnson",
		Title:       "Senior Stylist",
		Experience:  "8 years experience",
		ImageURL:    "https://images.unsplash.com/photo-1595475207225-428b62bda831?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300",
		Specialties: []string{"Color", "Highlights", "Styling"},
	},
	{
		Name:        "Mike Chen",
		Title:       "Color Specialist",
		Experience:  "6 years experience",
		ImageURL:    "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300",
		Specialties: []string{"Color", "Balayage", "Hair Treatment"},
	},
	{
		Name:        "Lisa Rodriguez",
		Title:       "Nail Artist",
		Experience:  "5 years experience",
		ImageURL:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=300",
		Specialties: []string{"Nail Art", "Gel Manicure", "Nail Design"},
	},
}
