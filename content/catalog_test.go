package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, "SBITM", catalog.College.ShortName)
	require.Contains(t, catalog.Programs, "btech")
	assert.NotEmpty(t, catalog.Programs["btech"])
	assert.Len(t, catalog.Placements.PreviousYears, 3)
	assert.NotEmpty(t, catalog.Facilities)
	assert.NotEmpty(t, catalog.Faculty["cse"])
	assert.ElementsMatch(t,
		[]string{"Campus", "Labs", "Events", "Sports", "Cultural"},
		catalog.Gallery.Categories)
}
