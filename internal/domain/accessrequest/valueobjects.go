package accessrequest

// Status is the lifecycle state of an access request.
// A request is created pending and transitions exactly once to
// approved or rejected; both outcomes are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision is an admin's review outcome for a pending request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) String() string {
	return string(d)
}

func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}
