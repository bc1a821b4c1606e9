package models

// Company identity used on the site, in email footers and in the chat
// system prompt.
const (
	CompanyName    = "Techno Mech Engineers"
	CompanyAddress = "1-9-121/E/C, opp. to Speck Systems, EC Complex, Kushaiguda, Hyderabad-500062"
	CompanyPhone   = "+91 83098 62581"
	CompanyEmail   = "technomech6@gmail.com"
	CompanyWebsite = "https://technomechengineers.in"
)

// Product is a catalog entry
type Product struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Service is a service offering
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Products is the static product catalog
var Products = []Product{
	{Name: "Precision Machine Components", Category: "Components", Description: "CNC machined parts with tight tolerances"},
	{Name: "Metal Washers", Category: "Fasteners", Description: "Various sizes and materials available"},
	{Name: "Metal Springs", Category: "Springs", Description: "Compression, extension, and torsion springs"},
	{Name: "Pipe Fittings", Category: "Fittings", Description: "Durable fittings for industrial use"},
}

// Services is the static service list
var Services = []Service{
	{Title: "Custom Manufacturing", Description: "Tailored production of components based on your specifications and drawings"},
	{Title: "CNC Machining", Description: "High-precision machining services with advanced CNC technology"},
	{Title: "Quality Testing", Description: "Comprehensive quality control and testing to ensure product excellence"},
}
