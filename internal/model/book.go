package model

// Review is one student's verdict on a book. The struct has no id and no
// timestamp: two reviews with the same name, rating and comment are
// indistinguishable, and the catalog merge collapses them into one. All
// fields are comparable so a Review can key a map.
//
// Fields:
//  StudentName – display name typed into the review form.
//  Rating      – 1 to 5 stars.
//  Comment     – free-text body.
type Review struct {
	StudentName string `json:"studentName"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// Book is a catalog entry. Baseline books ship with the portal; added
// books live behind the storage port and continue the same id sequence.
//
// Fields:
//  ID         – catalog id, unique across baseline and added books.
//  Title      – full title.
//  Author     – author line as printed on the cover.
//  Summary    – short blurb shown on the detail page.
//  CoverImage – cover URL; a placeholder is generated when absent.
//  Branch     – engineering branch the book belongs to.
//  Subject    – subject within the branch.
//  Available  – whether a copy can go into a bag right now.
//  Reviews    – merged reviews, baseline first then stored ones.
type Book struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Summary    string   `json:"summary"`
	CoverImage string   `json:"coverImage"`
	Branch     string   `json:"branch"`
	Subject    string   `json:"subject"`
	Available  bool     `json:"available"`
	Reviews    []Review `json:"reviews"`
}
