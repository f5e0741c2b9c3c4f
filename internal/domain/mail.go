package domain

const (
	MailRosterGenerated = "roster_generated"
	MailRosterCommitted = "roster_committed"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type RosterGeneratedMailData struct {
	BranchID    string `json:"branchId"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Assignments int    `json:"assignments"`
	Gaps        int    `json:"gaps"`
}

type RosterCommittedMailData struct {
	BranchID string `json:"branchId"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Created  int    `json:"created"`
	Failed   int    `json:"failed"`
}
