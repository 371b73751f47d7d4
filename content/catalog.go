package content

// Catalog is the static institutional content served by the read-only API.
// It is assembled once at startup and must not be mutated afterwards; handlers
// receive it by pointer and only ever read from it.
type Catalog struct {
	College     College                    `json:"college"`
	HeroSlides  []HeroSlide                `json:"hero_slides"`
	QuickStats  []QuickStat                `json:"quick_stats"`
	Programs    map[string][]Program       `json:"programs"`
	Placements  Placements                 `json:"placements"`
	Facilities  []Facility                 `json:"facilities"`
	Departments []Department               `json:"departments"`
	Faculty     map[string][]FacultyMember `json:"faculty"`
	Gallery     Gallery                    `json:"gallery"`
}

type College struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Established string `json:"established"`
	Affiliation string `json:"affiliation"`
	Approval    string `json:"approval"`
	NAAC        string `json:"naac"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
}

type HeroSlide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	CTAText  string `json:"cta_text"`
	CTALink  string `json:"cta_link"`
}

type QuickStat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
}

type Program struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Seats       int    `json:"seats"`
	Description string `json:"description"`
}

type Placements struct {
	CurrentYear   PlacementYear   `json:"current_year"`
	PreviousYears []PlacementYear `json:"previous_years"`
}

type PlacementYear struct {
	Year       string   `json:"year,omitempty"`
	Highest    string   `json:"highest"`
	Average    string   `json:"average"`
	Percentage string   `json:"percentage"`
	Offers     string   `json:"offers,omitempty"`
	Companies  []string `json:"companies,omitempty"`
}

type Facility struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Department struct {
	Name    string `json:"name"`
	Head    string `json:"head"`
	Faculty int    `json:"faculty"`
}

type FacultyMember struct {
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Qualification  string `json:"qualification"`
	Experience     string `json:"experience"`
	Specialization string `json:"specialization"`
	Image          string `json:"image"`
}

type Gallery struct {
	Categories []string       `json:"categories"`
	Images     []GalleryImage `json:"images"`
}

type GalleryImage struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Image    string `json:"image"`
}

// NewCatalog builds the full catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		College: College{
			Name:        "Shri Balaji Institute of Technology & Management",
			ShortName:   "SBITM",
			Address:     "NH-69, Betul Bypass Road, Betul, Madhya Pradesh",
			Phone:       "+91 78981 23456",
			Email:       "info@sbitm.edu.in",
			Established: "2009",
			Affiliation: "Rajiv Gandhi Proudyogiki Vishwavidyalaya (RGPV), Bhopal",
			Approval:    "AICTE Approved",
			NAAC:        "NAAC A+ Accredited",
			Vision:      "To be a premier institution of technical and management education producing globally competent professionals.",
			Mission:     "To provide quality education through innovative pedagogy and foster research, innovation, and entrepreneurship.",
		},
		HeroSlides: []HeroSlide{
			{Title: "Excellence in Engineering Education", Subtitle: "Shaping Future Innovators Since 2009", Image: "hero-engineering.jpg", CTAText: "Explore Programs", CTALink: "/academics"},
			{Title: "Placements with Top Companies", Subtitle: "92% Placement Record | ₹22 LPA Highest Package", Image: "hero-placements.jpg", CTAText: "View Placements", CTALink: "/placements"},
			{Title: "Modern Infrastructure & Labs", Subtitle: "State-of-the-art Facilities for Practical Learning", Image: "hero-infrastructure.jpg", CTAText: "Campus Tour", CTALink: "/facilities"},
			{Title: "Industry Ready Graduates", Subtitle: "Comprehensive Skill Development & Industry Training", Image: "hero-industry.jpg", CTAText: "View Faculty", CTALink: "/faculty"},
		},
		QuickStats: []QuickStat{
			{Number: "15+", Label: "Years of Excellence", Icon: "fas fa-award"},
			{Number: "2500+", Label: "Students", Icon: "fas fa-users"},
			{Number: "85+", Label: "Faculty", Icon: "fas fa-chalkboard-teacher"},
			{Number: "92%", Label: "Placement", Icon: "fas fa-briefcase"},
			{Number: "75+", Label: "Companies", Icon: "fas fa-building"},
			{Number: "50+", Label: "Labs", Icon: "fas fa-flask"},
		},
		Programs: map[string][]Program{
			"btech": {
				{Code: "CSE", Name: "Computer Science & Engineering", Duration: "4 Years", Seats: 120, Description: "Comprehensive program covering AI, ML, Data Science, and Software Engineering"},
				{Code: "AI&DS", Name: "Artificial Intelligence and Data Science", Duration: "4 Years", Seats: 60, Description: "Comprehensive program covering AI, ML, Data Science, and Software Engineering"},
				{Code: "ME", Name: "Mechanical Engineering", Duration: "4 Years", Seats: 60, Description: "Focus on design, manufacturing, thermal systems, and automation"},
				{Code: "CE", Name: "Civil Engineering", Duration: "4 Years", Seats: 60, Description: "Infrastructure development, structural design, and construction management"},
				{Code: "EE", Name: "Electrical Engineering", Duration: "4 Years", Seats: 60, Description: "Power systems, renewable energy, and electrical machine design"},
			},
		},
		Placements: Placements{
			CurrentYear: PlacementYear{
				Highest:    "₹22 LPA",
				Average:    "₹6.2 LPA",
				Percentage: "92%",
				Offers:     "180+",
				Companies: []string{
					"TCS", "Infosys", "Wipro", "Capgemini", "Accenture", "IBM", "Cognizant",
					"Tech Mahindra", "Amazon", "Microsoft", "Deloitte", "EY", "KPMG", "PwC",
					"HCL", "L&T", "Tata Motors", "Mahindra", "Bajaj", "Reliance",
				},
			},
			PreviousYears: []PlacementYear{
				{Year: "2023", Highest: "₹18 LPA", Average: "₹5.8 LPA", Percentage: "90%"},
				{Year: "2022", Highest: "₹16 LPA", Average: "₹5.5 LPA", Percentage: "88%"},
				{Year: "2021", Highest: "₹14 LPA", Average: "₹5.2 LPA", Percentage: "85%"},
			},
		},
		Facilities: []Facility{
			{Name: "Smart Classrooms", Icon: "fas fa-chalkboard-teacher", Description: "Digitally equipped with interactive boards and audio-visual systems"},
			{Name: "Advanced Laboratories", Icon: "fas fa-flask", Description: "25+ labs with latest equipment and technology"},
			{Name: "Central Library", Icon: "fas fa-book", Description: "50,000+ books, journals, and digital resources"},
			{Name: "Computer Center", Icon: "fas fa-desktop", Description: "500+ systems with high-speed internet and software"},
			{Name: "Sports Complex", Icon: "fas fa-futbol", Description: "Indoor and outdoor sports facilities"},
			{Name: "Cafeteria", Icon: "fas fa-utensils", Description: "Hygienic and nutritious food services"},
			{Name: "Medical Center", Icon: "fas fa-hospital", Description: "24x7 medical facility with qualified staff"},
		},
		Departments: []Department{
			{Name: "Computer Science", Head: "Dr. Pankaj singh Sisodiya", Faculty: 18},
			{Name: "Mechanical Engineering", Head: "Dr. Rajesh Barange", Faculty: 15},
			{Name: "Civil Engineering", Head: "Dr. Hemant Badode", Faculty: 12},
			{Name: "Electrical Engineering", Head: "Dr. Kapil Padlak", Faculty: 10},
		},
		Faculty: map[string][]FacultyMember{
			"cse": {
				{Name: "Dr. Pankaj Singh Sisodiya", Designation: "HOD - CSE", Qualification: "Ph.D. (Computer Science)", Experience: "15+ years", Specialization: "Artificial Intelligence", Image: "faculty-1.jpg"},
				{Name: "Prof. Rahul Sharma", Designation: "Professor", Qualification: "Ph.D. (Computer Engineering)", Experience: "12+ years", Specialization: "Machine Learning", Image: "faculty-2.jpg"},
				{Name: "Prof. Anjali Verma", Designation: "Associate Professor", Qualification: "Ph.D. (Data Science)", Experience: "10+ years", Specialization: "Data Mining", Image: "faculty-3.jpg"},
				{Name: "Prof. Rajesh Kumar", Designation: "Assistant Professor", Qualification: "M.Tech (CSE)", Experience: "8+ years", Specialization: "Cyber Security", Image: "faculty-4.jpg"},
				{Name: "Prof. Priya Patel", Designation: "Assistant Professor", Qualification: "Ph.D. (AI)", Experience: "6+ years", Specialization: "Deep Learning", Image: "faculty-5.jpg"},
			},
			"mechanical": {
				{Name: "Dr. Rajesh Barange", Designation: "HOD - Mechanical", Qualification: "Ph.D. (Mechanical Engineering)", Experience: "18+ years", Specialization: "Thermal Engineering", Image: "mech-1.jpg"},
				{Name: "Prof. Sanjay Mehta", Designation: "Professor", Qualification: "Ph.D. (Manufacturing)", Experience: "15+ years", Specialization: "Automation", Image: "mech-2.jpg"},
				{Name: "Prof. Ajay Singh", Designation: "Associate Professor", Qualification: "Ph.D. (Design)", Experience: "12+ years", Specialization: "CAD/CAM", Image: "mech-3.jpg"},
			},
			"civil": {
				{Name: "Dr. Hemant Badode", Designation: "HOD - Civil", Qualification: "Ph.D. (Civil Engineering)", Experience: "16+ years", Specialization: "Structural Engineering", Image: "civil-1.jpg"},
				{Name: "Prof. Rahul Gupta", Designation: "Professor", Qualification: "Ph.D. (Construction)", Experience: "14+ years", Specialization: "Concrete Technology", Image: "civil-2.jpg"},
			},
			"electrical": {
				{Name: "Dr. Kapil Padlak", Designation: "HOD - Electrical", Qualification: "Ph.D. (Electrical Engineering)", Experience: "17+ years", Specialization: "Power Systems", Image: "electrical-1.jpg"},
				{Name: "Prof. Mohan Sharma", Designation: "Professor", Qualification: "Ph.D. (Electronics)", Experience: "13+ years", Specialization: "Renewable Energy", Image: "electrical-2.jpg"},
			},
			"ece": {
				{Name: "Dr. Sunil Verma", Designation: "HOD - ECE", Qualification: "Ph.D. (Electronics)", Experience: "15+ years", Specialization: "Communication Systems", Image: "ece-1.jpg"},
				{Name: "Prof. Anil Kumar", Designation: "Professor", Qualification: "Ph.D. (VLSI)", Experience: "11+ years", Specialization: "VLSI Design", Image: "ece-2.jpg"},
			},
			"management": {
				{Name: "Dr. Meera Patel", Designation: "HOD - Management", Qualification: "Ph.D. (Business Administration)", Experience: "14+ years", Specialization: "Marketing", Image: "mba-1.jpg"},
				{Name: "Prof. Ravi Shankar", Designation: "Professor", Qualification: "Ph.D. (Finance)", Experience: "12+ years", Specialization: "Financial Management", Image: "mba-2.jpg"},
			},
		},
		Gallery: Gallery{
			Categories: []string{"Campus", "Labs", "Events", "Sports", "Cultural"},
			Images: []GalleryImage{
				{Category: "Campus", Title: "Main Building", Image: "campus-1.jpg"},
				{Category: "Labs", Title: "Computer Lab", Image: "lab-1.jpg"},
				{Category: "Events", Title: "Tech Fest", Image: "event-1.jpg"},
				{Category: "Sports", Title: "Annual Sports", Image: "sports-1.jpg"},
				{Category: "Cultural", Title: "Cultural Fest", Image: "cultural-1.jpg"},
			},
		},
	}
}
