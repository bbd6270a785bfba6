package model

// Loan pairs a borrowed book with its due date. Due dates are plain
// calendar strings (YYYY-MM-DD); there is no overdue processing here.
type Loan struct {
	Book    Book   `json:"book"`
	DueDate string `json:"dueDate"`
}

// User is a portal account. Profiles are fixed demo data: a user value is
// constructed at login from the matching profile and discarded at logout.
// The mobile number doubles as the password and is never serialized.
//
// Fields:
//  LibraryID        – library membership number, the login identifier.
//  MobileNumber     – contact number, also the credential.
//  Name             – display name.
//  Email            – contact email.
//  Role             – STUDENT or LIBRARIAN.
//  BorrowingHistory – books returned in the past.
//  CurrentBooks     – books currently on loan with due dates.
type User struct {
	LibraryID        string `json:"libraryId"`
	MobileNumber     string `json:"-"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	BorrowingHistory []Book `json:"borrowingHistory"`
	CurrentBooks     []Loan `json:"currentBooks"`
}
