package config

import "github.com/idilsaglam/weekcal/internal/model"

type sample struct {
	title, start, end string
	color             model.Color
	day               int
	description       string
	location          string
	attendees         []string
	organizer         string
}

var sampleWeek = []sample{
	{"Team Meeting", "09:00", "10:00", model.Blue, 1, "Weekly team sync-up", "Conference Room A", []string{"John Doe", "Jane Smith", "Bob Johnson"}, "Alice Brown"},
	{"Lunch with Sarah", "12:30", "13:30", model.Green, 1, "Discuss project timeline", "Cafe Nero", []string{"Sarah Lee"}, "You"},
	{"Project Review", "14:00", "15:30", model.Purple, 3, "Q2 project progress review", "Meeting Room 3", []string{"Team Alpha", "Stakeholders"}, "Project Manager"},
	{"Client Call", "10:00", "11:00", model.Yellow, 2, "Quarterly review with major client", "Zoom Meeting", []string{"Client Team", "Sales Team"}, "Account Manager"},
	{"Team Brainstorm", "13:00", "14:30", model.Indigo, 4, "Ideation session for new product features", "Creative Space", []string{"Product Team", "Design Team"}, "Product Owner"},
	{"Product Demo", "11:00", "12:00", model.Pink, 5, "Showcase new features to stakeholders", "Demo Room", []string{"Stakeholders", "Dev Team"}, "Tech Lead"},
	{"Marketing Meeting", "13:00", "14:00", model.Teal, 6, "Discuss Q3 marketing strategy", "Marketing Office", []string{"Marketing Team"}, "Marketing Director"},
	{"Code Review", "15:00", "16:00", model.Cyan, 7, "Review pull requests for new feature", "Dev Area", []string{"Dev Team"}, "Senior Developer"},
	{"Morning Standup", "08:30", "09:30", model.Blue, 2, "Daily team standup", "Slack Huddle", []string{"Development Team"}, "Scrum Master"},
	{"Design Review", "14:30", "15:45", model.Purple, 5, "Review new UI designs", "Design Lab", []string{"UX Team", "Product Manager"}, "Lead Designer"},
	{"Investor Meeting", "10:30", "12:00", model.Red, 7, "Quarterly investor update", "Board Room", []string{"Executive Team", "Investors"}, "CEO"},
	{"Team Training", "09:30", "11:30", model.Green, 4, "New tool onboarding session", "Training Room", []string{"All Departments"}, "HR"},
	{"Budget Review", "13:30", "15:00", model.Yellow, 3, "Quarterly budget analysis", "Finance Office", []string{"Finance Team", "Department Heads"}, "CFO"},
	{"Client Presentation", "11:00", "12:30", model.Orange, 6, "Present new project proposal", "Client Office", []string{"Sales Team", "Client Representatives"}, "Account Executive"},
	{"Product Planning", "14:00", "15:30", model.Pink, 1, "Roadmap discussion for Q3", "Strategy Room", []string{"Product Team", "Engineering Leads"}, "Product Manager"},
}

// SampleWeek returns the fifteen demo events, ids 1..15.
func SampleWeek() []model.Event {
	out := make([]model.Event, len(sampleWeek))
	for i, s := range sampleWeek {
		out[i] = model.Event{
			ID:          i + 1,
			Title:       s.title,
			Day:         s.day,
			Start:       model.MustClock(s.start),
			End:         model.MustClock(s.end),
			Color:       s.color,
			Description: s.description,
			Location:    s.location,
			Attendees:   append([]string(nil), s.attendees...),
			Organizer:   s.organizer,
		}
	}
	return out
}
