// Package mcp exposes notes and categories as Model Context Protocol tools,
// so agents can read and file notes over streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	categorysvc "github.com/heartmarshall/mynotes-backend/internal/service/category"
	notesvc "github.com/heartmarshall/mynotes-backend/internal/service/note"
)

type noteService interface {
	ListNotes(ctx context.Context, input notesvc.ListNotesInput) ([]*domain.Note, error)
	GetNote(ctx context.Context, noteID int64) (*domain.Note, error)
	CreateNote(ctx context.Context, input notesvc.CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input notesvc.UpdateNoteInput) (*domain.Note, error)
}

type categoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, input categorysvc.CreateCategoryInput) (*domain.Category, error)
}

// tools holds the dependencies shared by every tool handler.
type tools struct {
	notes      noteService
	categories categoryService
	log        *slog.Logger
}

// NewServer creates an MCP server with the note and category tools registered.
func NewServer(notes noteService, categories categoryService, log *slog.Logger, version string) *server.MCPServer {
	t := &tools{notes: notes, categories: categories, log: log.With("handler", "mcp")}

	s := server.NewMCPServer(
		"mynotes",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List notes, most recently updated first. Use the filters to narrow down to archived or active notes or to one category."),
			mcp.WithBoolean("archived",
				mcp.Description("Optional: true for archived notes only, false for active notes only"),
			),
			mcp.WithNumber("category",
				mcp.Description("Optional: only notes carrying this category id"),
			),
		),
		t.listNotes,
	)

	s.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a single note with its full content and categories."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The note id"),
			),
		),
		t.getNote,
	)

	s.AddTool(
		mcp.NewTool("create_note",
			mcp.WithDescription("Create a note. Categories are given by name; unknown names are created."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Note title"),
			),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("Note body (Markdown)"),
			),
			mcp.WithArray("categories",
				mcp.WithStringItems(),
				mcp.Description("Optional: category names to attach"),
			),
		),
		t.createNote,
	)

	s.AddTool(
		mcp.NewTool("archive_note",
			mcp.WithDescription("Archive a note, or restore it with archived=false. Title, content and categories are left unchanged."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The note id"),
			),
			mcp.WithBoolean("archived",
				mcp.Description("Optional: false to unarchive (default: true)"),
			),
		),
		t.archiveNote,
	)

	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List all categories. Use the ids to filter list_notes."),
		),
		t.listCategories,
	)

	s.AddTool(
		mcp.NewTool("create_category",
			mcp.WithDescription("Create a category."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Category name"),
			),
		),
		t.createCategory,
	)

	return s
}

// NoteResult represents a note in tool responses.
type NoteResult struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	IsArchived bool             `json:"isArchived"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	Categories []CategoryResult `json:"categories"`
}

// CategoryResult represents a category in tool responses.
type CategoryResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (t *tools) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input notesvc.ListNotesInput
	args := req.GetArguments()
	if _, ok := args["archived"]; ok {
		archived := req.GetBool("archived", false)
		input.IsArchived = &archived
	}
	if _, ok := args["category"]; ok {
		id := int64(req.GetInt("category", 0))
		input.CategoryID = &id
	}

	notes, err := t.notes.ListNotes(ctx, input)
	if err != nil {
		return t.toolError(ctx, "list notes", err), nil
	}

	results := make([]NoteResult, len(notes))
	for i, n := range notes {
		results[i] = toNoteResult(n)
	}
	return jsonResult(results)
}

func (t *tools) getNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	n, err := t.notes.GetNote(ctx, int64(id))
	if err != nil {
		return t.toolError(ctx, "get note", err), nil
	}
	return jsonResult(toNoteResult(n))
}

func (t *tools) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required"), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}

	names := req.GetStringSlice("categories", nil)
	refs := make([]domain.CategoryRef, len(names))
	for i := range names {
		refs[i] = domain.CategoryRef{Name: &names[i]}
	}

	n, err := t.notes.CreateNote(ctx, notesvc.CreateNoteInput{
		Title:      title,
		Content:    content,
		Categories: refs,
	})
	if err != nil {
		return t.toolError(ctx, "create note", err), nil
	}
	return jsonResult(toNoteResult(n))
}

func (t *tools) archiveNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}
	archived := req.GetBool("archived", true)

	n, err := t.notes.UpdateNote(ctx, notesvc.UpdateNoteInput{
		NoteID:     int64(id),
		IsArchived: &archived,
	})
	if err != nil {
		return t.toolError(ctx, "archive note", err), nil
	}
	return jsonResult(toNoteResult(n))
}

func (t *tools) listCategories(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats, err := t.categories.ListCategories(ctx)
	if err != nil {
		return t.toolError(ctx, "list categories", err), nil
	}

	results := make([]CategoryResult, len(cats))
	for i, c := range cats {
		results[i] = CategoryResult{ID: c.ID, Name: c.Name}
	}
	return jsonResult(results)
}

func (t *tools) createCategory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}

	c, err := t.categories.CreateCategory(ctx, categorysvc.CreateCategoryInput{Name: name})
	if err != nil {
		return t.toolError(ctx, "create category", err), nil
	}
	return jsonResult(CategoryResult{ID: c.ID, Name: c.Name})
}

// toolError turns a service error into a tool-level error result. Validation
// and not-found messages are shown to the agent; anything else is logged and
// reported generically.
func (t *tools) toolError(ctx context.Context, op string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", op, err))
	case errors.Is(err, domain.ErrNotFound):
		return mcp.NewToolResultError(op + ": not found")
	default:
		t.log.ErrorContext(ctx, "tool failed", slog.String("op", op), slog.String("error", err.Error()))
		return mcp.NewToolResultError(op + ": internal error")
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func toNoteResult(n *domain.Note) NoteResult {
	cats := make([]CategoryResult, len(n.Categories))
	for i, c := range n.Categories {
		cats[i] = CategoryResult{ID: c.ID, Name: c.Name}
	}
	return NoteResult{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		IsArchived: n.IsArchived,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Categories: cats,
	}
}
