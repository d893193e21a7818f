package project

// CreateProjectRequest carries the multipart fields of project intake; the
// handler saves uploaded files and attaches them before calling the service.
type CreateProjectRequest struct {
	Name         string `form:"name"`
	Requirement  string `form:"requirement"`
	ProjectValue string `form:"projectValue"`
	AssignTeam   string `form:"assignTeam"`
	Sector       string `form:"sector"`
	Date         string `form:"date"`
	Status       string `form:"status"`

	Documents []ProjectDocument `form:"-"`
}

// ProjectData is the replace-by-id payload sent as a JSON string inside the
// multipart update form.
type ProjectData struct {
	Name         string `json:"name"`
	Requirement  string `json:"requirement"`
	ProjectValue string `json:"projectValue"`
	AssignTeam   string `json:"assignTeam"`
	Sector       string `json:"sector"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

type SplitListResponse struct {
	ActiveProjects    []Project `json:"activeProjects"`
	CompletedProjects []Project `json:"completedProjects"`
}

// MarkCompletedRequest tolerates the id arriving as either a JSON number or
// a string; the handler coerces it.
type MarkCompletedRequest struct {
	ID any `json:"id"`
}
