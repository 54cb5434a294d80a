package dto

import (
	"strings"
	"testing"
)

func TestCreateTaskRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr bool
	}{
		{
			name:    "minimal valid",
			req:     CreateTaskRequest{Title: "Buy milk"},
			wantErr: false,
		},
		{
			name: "all fields valid",
			req: CreateTaskRequest{
				Title:       "Buy milk",
				Description: "from the corner shop",
				Status:      "in-progress",
				Priority:    "high",
				DueDate:     "2026-09-01T12:00:00Z",
			},
			wantErr: false,
		},
		{
			name:    "title exactly 100 chars",
			req:     CreateTaskRequest{Title: strings.Repeat("a", 100)},
			wantErr: false,
		},
		{
			name:    "title 101 chars",
			req:     CreateTaskRequest{Title: strings.Repeat("a", 101)},
			wantErr: true,
		},
		{
			name:    "multibyte title exactly 100 chars",
			req:     CreateTaskRequest{Title: strings.Repeat("任", 100)},
			wantErr: false,
		},
		{
			name:    "multibyte title 101 chars",
			req:     CreateTaskRequest{Title: strings.Repeat("任", 101)},
			wantErr: true,
		},
		{
			name:    "missing title",
			req:     CreateTaskRequest{Description: "no title"},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			req:     CreateTaskRequest{Title: "   "},
			wantErr: true,
		},
		{
			name:    "description 500 chars",
			req:     CreateTaskRequest{Title: "t", Description: strings.Repeat("d", 500)},
			wantErr: false,
		},
		{
			name:    "description 501 chars",
			req:     CreateTaskRequest{Title: "t", Description: strings.Repeat("d", 501)},
			wantErr: true,
		},
		{
			name:    "multibyte description exactly 500 chars",
			req:     CreateTaskRequest{Title: "t", Description: strings.Repeat("務", 500)},
			wantErr: false,
		},
		{
			name:    "invalid status",
			req:     CreateTaskRequest{Title: "t", Status: "done"},
			wantErr: true,
		},
		{
			name:    "invalid priority",
			req:     CreateTaskRequest{Title: "t", Priority: "urgent"},
			wantErr: true,
		},
		{
			name:    "malformed due date",
			req:     CreateTaskRequest{Title: "t", DueDate: "tomorrow"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestUpdateTaskRequestValidate(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     UpdateTaskRequest
		wantErr bool
	}{
		{
			name:    "empty body is a no-op update",
			req:     UpdateTaskRequest{},
			wantErr: false,
		},
		{
			name:    "status only",
			req:     UpdateTaskRequest{Status: str("completed")},
			wantErr: false,
		},
		{
			name:    "explicit empty title",
			req:     UpdateTaskRequest{Title: str("")},
			wantErr: true,
		},
		{
			name:    "overlong title",
			req:     UpdateTaskRequest{Title: str(strings.Repeat("a", 101))},
			wantErr: true,
		},
		{
			name:    "multibyte title at the limit",
			req:     UpdateTaskRequest{Title: str(strings.Repeat("任", 100))},
			wantErr: false,
		},
		{
			name:    "invalid status",
			req:     UpdateTaskRequest{Status: str("archived")},
			wantErr: true,
		},
		{
			name:    "malformed due date",
			req:     UpdateTaskRequest{DueDate: str("next week")},
			wantErr: true,
		},
		{
			name:    "valid due date",
			req:     UpdateTaskRequest{DueDate: str("2026-09-01T12:00:00Z")},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestUpdateTaskRequestPartialInput(t *testing.T) {
	str := func(s string) *string { return &s }

	req := UpdateTaskRequest{Status: str("completed")}
	input := req.Input()

	if input.Status == nil || string(*input.Status) != "completed" {
		t.Errorf("status not carried through: %v", input.Status)
	}
	if input.Title != nil || input.Description != nil || input.Priority != nil || input.DueDate != nil {
		t.Error("omitted fields must stay nil in the input")
	}
}

func TestListTasksRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ListTasksRequest
		wantErr bool
	}{
		{name: "empty", req: ListTasksRequest{}, wantErr: false},
		{name: "all valid", req: ListTasksRequest{Status: "completed", Priority: "high", Search: "milk", Page: "2", Limit: "50"}, wantErr: false},
		{name: "bad status", req: ListTasksRequest{Status: "done"}, wantErr: true},
		{name: "bad priority", req: ListTasksRequest{Priority: "urgent"}, wantErr: true},
		{name: "page zero", req: ListTasksRequest{Page: "0"}, wantErr: true},
		{name: "page not a number", req: ListTasksRequest{Page: "abc"}, wantErr: true},
		{name: "limit zero", req: ListTasksRequest{Limit: "0"}, wantErr: true},
		{name: "limit over 100", req: ListTasksRequest{Limit: "101"}, wantErr: true},
		{name: "limit 100", req: ListTasksRequest{Limit: "100"}, wantErr: false},
		{name: "search 100 chars", req: ListTasksRequest{Search: strings.Repeat("s", 100)}, wantErr: false},
		{name: "search 101 chars", req: ListTasksRequest{Search: strings.Repeat("s", 101)}, wantErr: true},
		{name: "multibyte search 100 chars", req: ListTasksRequest{Search: strings.Repeat("任", 100)}, wantErr: false},
		{name: "padded search trimmed before counting", req: ListTasksRequest{Search: "  " + strings.Repeat("s", 100) + "  "}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestTaskRequestInputTrimsDescription(t *testing.T) {
	create := CreateTaskRequest{Title: "t", Description: "  from the shop  "}
	if got := create.Input().Description; got != "from the shop" {
		t.Errorf("create description = %q, want trimmed", got)
	}

	str := func(s string) *string { return &s }
	update := UpdateTaskRequest{Description: str("  rewritten  ")}
	input := update.Input()
	if input.Description == nil || *input.Description != "rewritten" {
		t.Errorf("update description = %v, want trimmed", input.Description)
	}
}

func TestListTasksRequestFilter(t *testing.T) {
	req := ListTasksRequest{Status: "pending", Search: "  milk  ", Page: "3", Limit: "20"}
	filter := req.Filter()

	if filter.Search != "milk" {
		t.Errorf("search = %q, want trimmed %q", filter.Search, "milk")
	}

	if filter.Status != "pending" {
		t.Errorf("status = %q", filter.Status)
	}
	if filter.Page != 3 {
		t.Errorf("page = %d, want 3", filter.Page)
	}
	if filter.Limit != 20 {
		t.Errorf("limit = %d, want 20", filter.Limit)
	}

	// Absent numbers stay zero so the service applies defaults.
	empty := ListTasksRequest{}
	filter = empty.Filter()
	if filter.Page != 0 || filter.Limit != 0 {
		t.Errorf("empty request: page=%d limit=%d, want zeros", filter.Page, filter.Limit)
	}
}
