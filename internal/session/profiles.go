package session

import (
	"github.com/iliyamo/library-portal/internal/catalog"
	"github.com/iliyamo/library-portal/internal/model"
)

// Portal roles carried in the JWT "role" claim.
const (
	RoleStudent   = "STUDENT"
	RoleLibrarian = "LIBRARIAN"
)

// demoProfiles returns the fixed accounts the portal accepts. There is no
// registration: the student profile mirrors the demo member (library id
// 12345, mobile number doubling as the password) and the librarian profile
// guards the admin surface.
func demoProfiles() []model.User {
	history, _ := catalog.BaselineBook(2)
	current, _ := catalog.BaselineBook(4)
	return []model.User{
		{
			LibraryID:        "12345",
			MobileNumber:     "9876543210",
			Name:             "Aarav Sharma",
			Email:            "aarav.sharma@example.com",
			Role:             RoleStudent,
			BorrowingHistory: []model.Book{history},
			CurrentBooks:     []model.Loan{{Book: current, DueDate: "2024-08-15"}},
		},
		{
			LibraryID:        "90001",
			MobileNumber:     "9000090000",
			Name:             "Dr. Rakesh Verma",
			Email:            "library.iet@davv.ac.in",
			Role:             RoleLibrarian,
			BorrowingHistory: []model.Book{},
			CurrentBooks:     []model.Loan{},
		},
	}
}
