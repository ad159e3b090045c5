package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/consign/internal/handler"
)

const shopID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	body := `{
		"shops": {"` + shopID + `": [{"code": "WH1"}]},
		"inventory": [
			{"supplier": "WH1", "sku": "BEANS", "quantity": "5"},
			{"supplier": "WH1", "sku": "GRINDER", "quantity": "0", "availability": "backorder",
			 "release_date": "2025-01-01T00:00:00Z"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_DetermineBuckets(t *testing.T) {
	snapshot := writeSnapshot(t)
	req := `{"shop_id": "` + shopID + `", "items": [{"sku": "BEANS", "quantity": "1"}, {"sku": "GRINDER", "quantity": "1"}]}`

	tests := []struct {
		name string
		at   string
		want []string
	}{
		{name: "before release the grinder waits for its date", at: "2024-06-01T00:00:00Z", want: []string{"D1", "D2"}},
		{name: "after release the grinder waits for stock", at: "2025-06-01T00:00:00Z", want: []string{"D1", "D3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run([]string{"-snapshot", snapshot, "-at", tt.at}, strings.NewReader(req), &out)
			require.NoError(t, err, out.String())

			var resp handler.DetermineBucketsResponse
			require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
			var groups []string
			for _, b := range resp.Buckets {
				groups = append(groups, b.Group)
				assert.Equal(t, "WH1", b.Supplier)
			}
			assert.Equal(t, tt.want, groups)
		})
	}
}

func TestRun_ErrorReply(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-snapshot", writeSnapshot(t), "-subject", handler.SubjectMultipleDelivery},
		strings.NewReader(`{"items": []}`), &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), `"code": "invalid"`)
}

func TestRun_RequiresSnapshot(t *testing.T) {
	t.Setenv("SNAPSHOT_PATH", "")
	err := run(nil, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "-snapshot")
}
