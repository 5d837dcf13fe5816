package event_bus

const (
	ProjectCreated      EventType = "project.created"
	ProjectDeleted      EventType = "project.deleted"
	EntryUpserted       EventType = "entry.upserted"
	AllotmentOverridden EventType = "allotment.overridden"
)

type ProjectCreatedData struct {
	Id   int
	Code string
}

type ProjectDeletedData struct {
	Id int
}

type EntryUpsertedData struct {
	ProjectId int
	// Date is the entry's calendar date, formatted YYYY-MM-DD.
	Date  string
	Hours float64
}

type AllotmentOverriddenData struct {
	ProjectId int
	// Month is the override's month key, formatted YYYY-MM.
	Month string
	Hours float64
}
