package attendance

// SubmitRecord is one element of the array accepted by POST /attendance and
// POST /attendance/bulk. UserID is a pointer so that a missing field can be
// told apart from zero (both are rejected).
type SubmitRecord struct {
	UserID   *int   `json:"userId"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	UserName string `json:"userName,omitempty"`
}

type InvalidRecord struct {
	Record SubmitRecord `json:"record"`
	Reason string       `json:"reason"`
}

type SubmitResult struct {
	InsertedCount  int64           `json:"insertedCount"`
	InvalidRecords []InvalidRecord `json:"invalidRecords"`
}

// BulkOutcome reports one record of a bulk upsert; exactly one of Success or
// Error is populated.
type BulkOutcome struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	UserID  *int   `json:"userId"`
	Status  string `json:"status,omitempty"`
}

type DayRecordsResult struct {
	Records    []AttendanceRecord `json:"records"`
	QueryDate  string             `json:"queryDate"`
	StartOfDay string             `json:"startOfDay"`
	EndOfDay   string             `json:"endOfDay"`
}

type PresentCountResult struct {
	Count      int64  `json:"count"`
	QueryDate  string `json:"queryDate"`
	StartOfDay string `json:"startOfDay"`
	EndOfDay   string `json:"endOfDay"`
}

// MonthlyEmployeeAttendance groups a month of records under each employee;
// employees without records still appear with an empty list.
type MonthlyEmployeeAttendance struct {
	UserID     int                `json:"userId"`
	UserName   string             `json:"userName"`
	Attendance []AttendanceRecord `json:"attendance"`
}
