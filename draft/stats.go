package draft

// Stats summarizes a template listing by status.
type Stats struct {
	Total    int
	Approved int
	Pending  int
	Rejected int
}

func Summarize(templates []Template) Stats {
	s := Stats{Total: len(templates)}
	for _, t := range templates {
		switch t.Status {
		case StatusApproved:
			s.Approved++
		case StatusPending:
			s.Pending++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}
