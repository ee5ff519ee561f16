package rest

import (
	"time"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClientResponses(clients []*domain.Client) []clientResponse {
	out := make([]clientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return out
}

type projectResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	PaymentState string    `json:"paymentState"`
	ProgressPct  int       `json:"progressPct"`
	Budget       *float64  `json:"budget"`
	PaidAmount   float64   `json:"paidAmount"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Deadline     *string   `json:"deadline"`
	Overdue      bool      `json:"overdue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project, today time.Time) projectResponse {
	return projectResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  p.Description,
		Kind:         p.Kind.String(),
		Status:       p.Status.String(),
		PaymentState: p.PaymentState.String(),
		ProgressPct:  p.ProgressPct,
		Budget:       p.Budget,
		PaidAmount:   p.PaidAmount,
		StartDate:    formatDate(p.StartDate),
		EndDate:      formatDate(p.EndDate),
		Deadline:     formatDate(p.Deadline),
		Overdue:      p.IsOverdue(today),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProjectResponses(projects []*domain.Project, today time.Time) []projectResponse {
	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p, today)
	}
	return out
}

type projectDetailResponse struct {
	projectResponse
	Tasks    []taskResponse          `json:"tasks"`
	Timeline []timelineEntryResponse `json:"timeline"`
	Clients  []linkedClientResponse  `json:"clients"`
}

func toProjectDetailResponse(d *domain.ProjectDetail, today time.Time) projectDetailResponse {
	clients := make([]linkedClientResponse, len(d.Clients))
	for i, c := range d.Clients {
		clients[i] = toLinkedClientResponse(c)
	}
	return projectDetailResponse{
		projectResponse: toProjectResponse(&d.Project, today),
		Tasks:           toTaskResponses(d.Tasks),
		Timeline:        toTimelineResponses(d.Timeline),
		Clients:         clients,
	}
}

type progressResponse struct {
	Total    int `json:"total"`
	Done     int `json:"done"`
	Computed int `json:"computed"`
	Stored   int `json:"stored"`
}

type linkedClientResponse struct {
	clientResponse
	LinkID   string    `json:"linkId"`
	LinkNote *string   `json:"linkNote"`
	LinkedAt time.Time `json:"linkedAt"`
}

func toLinkedClientResponse(c *domain.LinkedClient) linkedClientResponse {
	return linkedClientResponse{
		clientResponse: toClientResponse(&c.Client),
		LinkID:         c.LinkID.String(),
		LinkNote:       c.LinkNote,
		LinkedAt:       c.LinkedAt,
	}
}

type projectClientResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	ClientID  string    `json:"clientId"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Done        bool      `json:"done"`
	Priority    int       `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		Priority:    t.Priority,
		DueDate:     formatDate(t.DueDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

type timelineEntryResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Milestone   string     `json:"milestone"`
	Description *string    `json:"description"`
	Done        bool       `json:"done"`
	DoneAt      *time.Time `json:"doneAt"`
	OrderIndex  int        `json:"orderIndex"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toTimelineResponse(e *domain.TimelineEntry) timelineEntryResponse {
	return timelineEntryResponse{
		ID:          e.ID.String(),
		ProjectID:   e.ProjectID.String(),
		Milestone:   e.Milestone,
		Description: e.Description,
		Done:        e.Done,
		DoneAt:      e.DoneAt,
		OrderIndex:  e.OrderIndex,
		CreatedAt:   e.CreatedAt,
	}
}

func toTimelineResponses(entries []*domain.TimelineEntry) []timelineEntryResponse {
	out := make([]timelineEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toTimelineResponse(e)
	}
	return out
}

type statsResponse struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Active      int     `json:"active"`
	Completed   int     `json:"completed"`
	Delivered   int     `json:"delivered"`
	Overdue     int     `json:"overdue"`
	Clients     int     `json:"clients"`
	BudgetSum   float64 `json:"budgetSum"`
	RevenueSum  float64 `json:"revenueSum"`
	AvgProgress float64 `json:"avgProgress"`
}
