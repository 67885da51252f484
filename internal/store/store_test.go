// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/opage-go/internal/model"
)

// testDB creates a migrated and seeded test database in a temp directory.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "opage-test.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db), "Migrate")
	require.NoError(t, Seed(context.Background(), db), "Seed")

	return db
}

func testComponent(id int64, name string) model.Component {
	return model.Component{
		ID:       id,
		Name:     name,
		Icon:     "box",
		Category: model.ComponentCategoryContainer,
		Properties: []model.Property{
			{
				Name:     "bgColor",
				Value:    json.RawMessage(`"#ffffff"`),
				Label:    "Background Color",
				Type:     model.PropertyTypeColor,
				Category: model.PropertyCategoryDecoration,
			},
		},
		CanContainContent: true,
	}
}

func TestSeedIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Second seed must not touch the existing row
	require.NoError(t, Seed(ctx, db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM page`).Scan(&count))
	require.Equal(t, 1, count, "exactly one page row after double seed")

	page, err := New(db).GetPage(ctx)
	require.NoError(t, err)
	require.Equal(t, model.DefaultPage(), page)
}

func TestSeedPreservesCustomizedPage(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	custom := model.Page{
		Elements: []model.Element{
			{
				ID:       1,
				Type:     "heading",
				Position: model.Position{X: 10, Y: 20},
				Size:     model.Size{Width: 200, Height: 50},
			},
		},
		Settings: model.PageSettings{
			Responsive: false,
			Width:      640,
			Height:     480,
			MaxWidth:   "640px",
			BgColor:    "#000000",
		},
	}

	_, err := q.SavePage(ctx, custom)
	require.NoError(t, err)

	// Re-running the initializer must not reset the customized row
	require.NoError(t, Seed(ctx, db))

	got, err := q.GetPage(ctx)
	require.NoError(t, err)
	require.Equal(t, custom, got)
}

func TestPageRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	page := model.Page{
		Elements: []model.Element{
			{
				ID:       1,
				Type:     "text",
				Position: model.Position{X: 12.5, Y: 34.25},
				Size:     model.Size{Width: 320, Height: 48},
				Props:    json.RawMessage(`{"text":"Hello","fontSize":16}`),
			},
			{
				ID:       2,
				Type:     "image",
				Position: model.Position{X: 0, Y: 100},
				Size:     model.Size{Width: 640, Height: 360},
				Props:    json.RawMessage(`{"src":"/cat.png","alt":"a cat"}`),
			},
		},
		Settings: model.PageSettings{
			Responsive: true,
			Width:      1024,
			Height:     768,
			MaxWidth:   "1024px",
			BgColor:    "#fafafa",
		},
	}

	saved, err := q.SavePage(ctx, page)
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(page, saved), "save must echo the stored page")

	got, err := q.GetPage(ctx)
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(page, got), "get must return the saved page")
}

func TestGetPageMissingRow(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.Exec(`DELETE FROM page`)
	require.NoError(t, err)

	_, err = New(db).GetPage(ctx)
	require.Error(t, err)
}

func TestGetPageMalformedElements(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.Exec(`UPDATE page SET elements = '{not json' WHERE id = ?`, model.PageID)
	require.NoError(t, err)

	_, err = New(db).GetPage(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing elements")
}

func TestUpsertComponentCreatesAndUpdates(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	created, err := q.UpsertComponent(ctx, testComponent(42, "Card"))
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())

	time.Sleep(25 * time.Millisecond)

	renamed := testComponent(42, "Fancy Card")
	updated, err := q.UpsertComponent(ctx, renamed)
	require.NoError(t, err)
	require.Equal(t, "Fancy Card", updated.Name)
	require.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond,
		"created_at must survive the upsert")
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt),
		"updated_at must advance on upsert")

	// Still a single row for the id
	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM components WHERE component_id = 42`).Scan(&count))
	require.Equal(t, 1, count)

	got, err := q.GetComponentByID(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, "Fancy Card", got.Name)
}

func TestUpsertComponentPreservesOpaqueFields(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	desc := "A button"
	required := true
	component := model.Component{
		ID:          7,
		Name:        "Button",
		Icon:        "square",
		Category:    model.ComponentCategoryInput,
		Description: &desc,
		Properties: []model.Property{
			{
				Name:        "label",
				Value:       json.RawMessage(`"Click me"`),
				Label:       "Label",
				Type:        model.PropertyTypeString,
				Category:    model.PropertyCategoryBasic,
				Required:    &required,
				Description: &desc,
			},
			{
				Name:     "variant",
				Value:    json.RawMessage(`"primary"`),
				Label:    "Variant",
				Type:     model.PropertyTypeSelect,
				Category: model.PropertyCategoryAdvanced,
				Options:  []string{"primary", "secondary", "ghost"},
			},
		},
		CanContainContent: false,
		DefaultContent:    json.RawMessage(`[{"type":"text","content":"Click me"}]`),
		Tags:              []string{"button", "input", "form"},
	}

	_, err := q.UpsertComponent(ctx, component)
	require.NoError(t, err)

	got, err := q.GetComponentByID(ctx, 7)
	require.NoError(t, err)

	require.Equal(t, component.Properties, got.Properties)
	require.Equal(t, component.DefaultContent, got.DefaultContent)
	require.Equal(t, component.Tags, got.Tags)
	require.NotNil(t, got.Description)
	require.Equal(t, desc, *got.Description)
}

func TestListComponentsOrdering(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	for i, name := range []string{"Banana", "Apple", "Cherry"} {
		_, err := q.UpsertComponent(ctx, testComponent(int64(i+1), name))
		require.NoError(t, err)
	}

	components, skipped, err := q.ListComponents(ctx)
	require.NoError(t, err)
	require.Zero(t, skipped)

	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.Name
	}
	require.Equal(t, []string{"Apple", "Banana", "Cherry"}, names)
}

func TestListComponentsSkipsMalformedRow(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	_, err := q.UpsertComponent(ctx, testComponent(1, "Good"))
	require.NoError(t, err)

	// Simulate schema drift: a stored row whose properties no longer
	// decode into the Property shape.
	_, err = db.Exec(
		`INSERT INTO components (component_id, name, icon, category, properties,
			can_contain_content, default_content, created_at, updated_at)
		 VALUES (2, 'Bad', 'x', 'custom', '{not json', 0, 'null', ?, ?)`,
		time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	components, skipped, err := q.ListComponents(ctx)
	require.NoError(t, err, "a single malformed row must not fail the listing")
	require.Equal(t, 1, skipped)
	require.Len(t, components, 1)
	require.Equal(t, "Good", components[0].Name)
}

func TestDeleteComponent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	_, err := q.UpsertComponent(ctx, testComponent(9, "Doomed"))
	require.NoError(t, err)

	require.NoError(t, q.DeleteComponent(ctx, 9))

	_, _, err = q.ListComponents(ctx)
	require.NoError(t, err)

	_, err = q.GetComponentByID(ctx, 9)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteComponentNoOp(t *testing.T) {
	db := testDB(t)

	// Deleting an id with no matching row is a no-op, not an error
	require.NoError(t, New(db).DeleteComponent(context.Background(), 12345))
}

func TestConcurrentSavePageLastWriterWins(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	pageA := model.DefaultPage()
	pageA.Elements = []model.Element{{ID: 1, Type: "text"}}
	pageB := model.DefaultPage()
	pageB.Elements = []model.Element{{ID: 2, Type: "image"}}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, page := range []model.Page{pageA, pageB} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = q.SavePage(ctx, page)
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// The final state is exactly one of the two writes, never a merge.
	got, err := q.GetPage(ctx)
	require.NoError(t, err)
	if !reflect.DeepEqual(got, pageA) && !reflect.DeepEqual(got, pageB) {
		t.Fatalf("final page is neither submitted value: %+v", got)
	}
}
