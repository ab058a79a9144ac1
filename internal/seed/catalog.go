package seed

import "github.com/BruksfildServices01/service-booking/internal/models"

// DefaultServices is the starter catalog.
var DefaultServices = []models.Service{
	{Name: "Electrician", Description: "Professional electrical services including wiring, repairs, and installations", Price: 150, Duration: 2, Category: "Electrical"},
	{Name: "Plumber", Description: "Expert plumbing services for leaks, installations, and repairs", Price: 120, Duration: 2, Category: "Plumbing"},
	{Name: "Cleaner", Description: "Thorough cleaning services for homes and offices", Price: 80, Duration: 3, Category: "Cleaning"},
	{Name: "Painter", Description: "Professional painting services for interior and exterior walls", Price: 200, Duration: 4, Category: "Painting"},
	{Name: "HVAC Technician", Description: "Heating, ventilation, and air conditioning installation, repair, and maintenance", Price: 180, Duration: 3, Category: "HVAC"},
	{Name: "Carpenter", Description: "Custom furniture, cabinets, shelves, and woodwork installations", Price: 160, Duration: 4, Category: "Carpentry"},
	{Name: "Locksmith", Description: "Lock installation, repair, key duplication, and emergency lockout services", Price: 100, Duration: 1, Category: "Security"},
	{Name: "Landscaper", Description: "Garden design, lawn care, tree trimming, and outdoor space maintenance", Price: 140, Duration: 4, Category: "Landscaping"},
	{Name: "Appliance Repair", Description: "Repair and maintenance for washing machines, dryers, refrigerators, and more", Price: 130, Duration: 2, Category: "Appliance"},
	{Name: "Moving Service", Description: "Professional moving and relocation services for homes and offices", Price: 250, Duration: 6, Category: "Moving"},
	{Name: "Handyman", Description: "General home repairs, installations, and maintenance tasks", Price: 110, Duration: 3, Category: "Maintenance"},
	{Name: "Carpet Cleaning", Description: "Deep cleaning, stain removal, and sanitization for carpets and rugs", Price: 90, Duration: 2, Category: "Cleaning"},
	{Name: "Pest Control", Description: "Professional pest extermination and prevention services", Price: 120, Duration: 2, Category: "Pest Control"},
	{Name: "Roofing", Description: "Roof repair, installation, inspection, and maintenance services", Price: 300, Duration: 6, Category: "Construction"},
	{Name: "Tiler", Description: "Tile installation and repair for floors, walls, and bathrooms", Price: 170, Duration: 4, Category: "Construction"},
	{Name: "Window Cleaning", Description: "Interior and exterior window cleaning for residential and commercial properties", Price: 85, Duration: 2, Category: "Cleaning"},
	{Name: "Flooring", Description: "Hardwood, laminate, and vinyl floor installation and repair", Price: 220, Duration: 5, Category: "Construction"},
	{Name: "Drywall Repair", Description: "Drywall installation, patching, and finishing services", Price: 150, Duration: 3, Category: "Construction"},
	{Name: "Garage Door Repair", Description: "Garage door installation, repair, and maintenance services", Price: 140, Duration: 2, Category: "Maintenance"},
	{Name: "Gutter Cleaning", Description: "Gutter cleaning, repair, and installation services", Price: 100, Duration: 2, Category: "Maintenance"},
	{Name: "Pressure Washing", Description: "Exterior pressure washing for driveways, patios, and building exteriors", Price: 120, Duration: 3, Category: "Cleaning"},
}
