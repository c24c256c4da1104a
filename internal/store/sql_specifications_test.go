package store

import (
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/asset-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOf_SkipsNilPredicates(t *testing.T) {
	where := allOf(
		containsAny("  ", "a.name"),
		equalIf("a.location_id", int64(0)),
		equalIf("a.state", models.AssetStateAvailable),
		inIf[int64]("a.category_id", nil),
	)

	query, args, err := psql.Select("a.id").From("assets a").Where(where).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT a.id FROM assets a WHERE (a.state = $1)", query)
	assert.Equal(t, []any{models.AssetStateAvailable}, args)
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		columns  []string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "single column",
			term:     "lap",
			columns:  []string{"a.name"},
			wantSQL:  "(a.name ILIKE ?)",
			wantArgs: []any{"%lap%"},
		},
		{
			name:     "several columns",
			term:     " SD01 ",
			columns:  []string{"u.staff_code", "u.username"},
			wantSQL:  "(u.staff_code ILIKE ? OR u.username ILIKE ?)",
			wantArgs: []any{"%SD01%", "%SD01%"},
		},
		{
			name:     "wildcards are escaped",
			term:     "50%_off",
			columns:  []string{"a.name"},
			wantSQL:  "(a.name ILIKE ?)",
			wantArgs: []any{`%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := containsAny(tt.term, tt.columns...)
			require.NotNil(t, spec)

			query, args, err := spec.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestContainsAny_EmptyTerm(t *testing.T) {
	assert.Nil(t, containsAny("", "a.name"))
	assert.Nil(t, containsAny("x"))
}

func TestDateEqualIf(t *testing.T) {
	assert.Nil(t, dateEqualIf("rr.returned_date", nil))
	assert.Nil(t, dateEqualIf("rr.returned_date", &models.Date{}))

	d := models.NewDate(2024, 1, 15)
	assert.Equal(t, sq.Eq{"rr.returned_date": d}, dateEqualIf("rr.returned_date", &d))
}

func TestOrderAndPage(t *testing.T) {
	columns := sortColumns{"name": "a.name", "code": "a.asset_code"}

	tests := []struct {
		name    string
		page    models.PageRequest
		wantSQL string
		wantErr error
	}{
		{
			name:    "default key ascending",
			page:    models.PageRequest{PageNumber: 1, PageSize: 10},
			wantSQL: "SELECT a.id FROM assets a ORDER BY a.asset_code ASC, a.id ASC LIMIT 10 OFFSET 0",
		},
		{
			name:    "explicit key descending",
			page:    models.PageRequest{PageNumber: 3, PageSize: 20, OrderBy: "name", SortDir: "desc"},
			wantSQL: "SELECT a.id FROM assets a ORDER BY a.name DESC, a.id ASC LIMIT 20 OFFSET 40",
		},
		{
			name:    "no paging",
			page:    models.PageRequest{OrderBy: "name"},
			wantSQL: "SELECT a.id FROM assets a ORDER BY a.name ASC, a.id ASC",
		},
		{
			name:    "unknown key",
			page:    models.PageRequest{PageNumber: 1, PageSize: 10, OrderBy: "hash_password"},
			wantErr: ErrInvalidSortField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := orderAndPage(psql.Select("a.id").From("assets a"), tt.page, columns, "code", "a.id")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)

			query, _, err := b.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
		})
	}
}
