package catalog

import "github.com/iliyamo/library-portal/internal/model"

// Fixed reference data for the portal. Everything in this file is
// compile-time configuration: the baseline catalog, the branch and subject
// taxonomy, and the static ebook/study-material/contact content. The
// baseline catalog is never mutated; admin additions live behind the
// storage port and are merged in by Store.Snapshot.

// Branches lists the engineering branches offered in the browse filter.
var Branches = []string{
	"Computer Engineering",
	"Information Technology",
	"Electronics & Telecommunication",
	"Mechanical Engineering",
	"Civil Engineering",
}

// Subjects maps each branch to its subject labels.
var Subjects = map[string][]string{
	"Computer Engineering":            {"Data Structures", "Algorithms", "Operating Systems", "Database Management"},
	"Information Technology":          {"Web Development", "Cyber Security", "Cloud Computing", "Data Science"},
	"Electronics & Telecommunication": {"Digital Circuits", "Signal Processing", "Communication Systems"},
	"Mechanical Engineering":          {"Thermodynamics", "Fluid Mechanics", "Machine Design"},
	"Civil Engineering":               {"Structural Analysis", "Geotechnical Engineering", "Transportation Engineering"},
}

// baselineBooks is the seed catalog. Snapshot copies entries before merging
// stored reviews so callers can never mutate this slice through a snapshot.
var baselineBooks = []model.Book{
	{
		ID:         1,
		Title:      "Data Structures & Algorithms in Java",
		Author:     "Robert Lafore",
		Summary:    "A comprehensive guide to fundamental data structures and algorithms using Java, with practical examples.",
		CoverImage: "https://picsum.photos/seed/book1/300/400",
		Branch:     "Computer Engineering",
		Subject:    "Data Structures",
		Available:  true,
		Reviews:    []model.Review{{StudentName: "Amit S.", Rating: 5, Comment: "Excellent book for beginners!"}},
	},
	{
		ID:         2,
		Title:      "Operating System Concepts",
		Author:     "Silberschatz, Galvin, Gagne",
		Summary:    "The classic book on operating systems, covering all major concepts from processes to memory management.",
		CoverImage: "https://picsum.photos/seed/book2/300/400",
		Branch:     "Computer Engineering",
		Subject:    "Operating Systems",
		Available:  false,
		Reviews:    []model.Review{{StudentName: "Priya K.", Rating: 4, Comment: "Very detailed, a must-read."}},
	},
	{
		ID:         3,
		Title:      "Full Stack Web Development",
		Author:     "Jane Doe",
		Summary:    "Master front-end and back-end technologies to build complete web applications from scratch.",
		CoverImage: "https://picsum.photos/seed/book3/300/400",
		Branch:     "Information Technology",
		Subject:    "Web Development",
		Available:  true,
		Reviews:    []model.Review{{StudentName: "Rohan M.", Rating: 5, Comment: "The best guide for MERN stack."}},
	},
	{
		ID:         4,
		Title:      "Introduction to Algorithms",
		Author:     "Thomas H. Cormen",
		Summary:    "Often called CLRS, this is the bible of algorithms for students and professionals alike.",
		CoverImage: "https://picsum.photos/seed/book4/300/400",
		Branch:     "Computer Engineering",
		Subject:    "Algorithms",
		Available:  true,
		Reviews:    []model.Review{{StudentName: "Sneha P.", Rating: 5, Comment: "Challenging but incredibly rewarding."}},
	},
	{
		ID:         5,
		Title:      "Database System Concepts",
		Author:     "Korth, Sudarshan",
		Summary:    "A definitive guide to database management systems, covering SQL, relational algebra, and system design.",
		CoverImage: "https://picsum.photos/seed/book5/300/400",
		Branch:     "Computer Engineering",
		Subject:    "Database Management",
		Available:  false,
		Reviews:    []model.Review{{StudentName: "Vikram B.", Rating: 4, Comment: "Comprehensive and well-structured."}},
	},
	{
		ID:         6,
		Title:      "Cloud Computing: A Practical Approach",
		Author:     "Velte, Velte, Elsenpeter",
		Summary:    "Explores the fundamentals of cloud computing, service models like IaaS, PaaS, and SaaS, with real-world examples.",
		CoverImage: "https://picsum.photos/seed/book6/300/400",
		Branch:     "Information Technology",
		Subject:    "Cloud Computing",
		Available:  true,
		Reviews:    []model.Review{{StudentName: "Aditi G.", Rating: 4, Comment: "Great overview of the cloud landscape."}},
	},
}

// EBooks is the digital collection shown on the eBooks page.
var EBooks = []model.EBook{
	{ID: 1, Title: "Advanced Digital Circuits", Author: "A. Kumar", Format: "PDF", URL: "#"},
	{ID: 2, Title: "Basics of Signal Processing", Author: "B. Gupta", Format: "PDF", URL: "#"},
	{ID: 3, Title: "Machine Design Fundamentals", Author: "C. Verma", Format: "DOC", URL: "#"},
}

// StudyMaterials lists shared notes and past papers.
var StudyMaterials = []model.StudyMaterial{
	{ID: 1, Title: "DSA - Linked List Notes", Type: "notes", Subject: "Data Structures", UploadedBy: "Prof. Anjali Mehta", URL: "#"},
	{ID: 2, Title: "OS - Mid Sem 2023 Paper", Type: "paper", Subject: "Operating Systems", UploadedBy: "Admin", URL: "#"},
	{ID: 3, Title: "Web Dev - React Hooks Cheatsheet", Type: "notes", Subject: "Web Development", UploadedBy: "Riya Singh (Topper)", URL: "#"},
}

// Contact is the library's contact card.
var Contact = model.ContactInfo{
	Librarian: "Dr. Rakesh Verma, Head Librarian",
	Phone:     "+91-731-2361116",
	Email:     "library.iet@davv.ac.in",
	Address:   "Institute of Engineering & Technology, Devi Ahilya Vishwavidyalaya, Khandwa Road, Indore, Madhya Pradesh 452017",
	Hours: map[string]string{
		"Monday - Friday":      "9:00 AM - 6:00 PM",
		"Saturday":             "9:00 AM - 2:00 PM",
		"Sunday":               "Closed",
		"Book Issuance/Return": "9:00 AM - 5:00 PM (Mon-Fri)",
	},
}

// BaselineBook returns a baseline entry by id for seeding demo profiles.
// The second return is false when the id is not part of the seed catalog.
func BaselineBook(id int) (model.Book, bool) {
	for _, b := range baselineBooks {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}
