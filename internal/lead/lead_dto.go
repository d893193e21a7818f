package lead

type CreateLeadRequest struct {
	Client   string `json:"client" binding:"required"`
	PIC      string `json:"pic"`
	Contact  string `json:"contact"`
	Sector   string `json:"sector"`
	APV      string `json:"apv"`
	Location string `json:"location"`
	Status   string `json:"status" binding:"omitempty,oneof=lead prospect client"`
}

type UpdateStatusRequest struct {
	To string `json:"to" binding:"required,oneof=lead prospect client"`
}

// GroupedContactsResponse buckets every lead by funnel stage.
type GroupedContactsResponse struct {
	Lead     []Lead `json:"lead"`
	Prospect []Lead `json:"prospect"`
	Client   []Lead `json:"client"`
}
