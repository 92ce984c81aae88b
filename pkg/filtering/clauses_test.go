package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/toolcatalog/pkg/catalog"
	"github.com/ajxudir/toolcatalog/pkg/testutil"
	"github.com/ajxudir/toolcatalog/pkg/utils"
)

// TestMatchesLanguage tests the language clause.
func TestMatchesLanguage(t *testing.T) {
	goTool := testutil.NewEntry("a").WithLanguage("Go").Build().Filters
	none := testutil.NewEntry("b").Build().Filters

	assert.True(t, MatchesLanguage(goTool, nil))
	assert.True(t, MatchesLanguage(none, nil))
	assert.True(t, MatchesLanguage(goTool, utils.Set([]string{"Go", "Java"})))
	assert.False(t, MatchesLanguage(goTool, utils.Set([]string{"Java"})))
	assert.False(t, MatchesLanguage(none, utils.Set([]string{"Go"})))
}

// TestMatchesTechnology tests the technology clause.
func TestMatchesTechnology(t *testing.T) {
	tool := testutil.NewEntry("a").WithTechnologies("Kafka", "Node.js").Build().Filters
	none := testutil.NewEntry("b").Build().Filters

	assert.True(t, MatchesTechnology(tool, nil))
	assert.True(t, MatchesTechnology(tool, utils.Set([]string{"Node.js"})))
	assert.True(t, MatchesTechnology(tool, utils.Set([]string{"AMQP", "Kafka"})))
	assert.False(t, MatchesTechnology(tool, utils.Set([]string{"AMQP"})))
	assert.False(t, MatchesTechnology(none, utils.Set([]string{"AMQP"})))
}

// TestMatchesSearch tests the search clause.
func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("anything", nil))
	assert.True(t, MatchesSearch("AsyncAPI Studio", NewContainsMatcher("studio")))
	assert.True(t, MatchesSearch("AsyncAPI Studio", NewContainsMatcher("")))
	assert.False(t, MatchesSearch("Microcks", NewContainsMatcher("studio")))
}

// TestMatchesAsyncAPIOwner tests that only a true flag constrains.
func TestMatchesAsyncAPIOwner(t *testing.T) {
	owned := catalog.Filters{IsAsyncAPIOwner: true}
	community := catalog.Filters{}

	assert.True(t, MatchesAsyncAPIOwner(owned, true))
	assert.False(t, MatchesAsyncAPIOwner(community, true))
	assert.True(t, MatchesAsyncAPIOwner(owned, false))
	assert.True(t, MatchesAsyncAPIOwner(community, false))
}

// TestMatchesPaid tests the pricing clause.
func TestMatchesPaid(t *testing.T) {
	paid := catalog.Filters{HasCommercial: catalog.Bool(true)}
	free := catalog.Filters{HasCommercial: catalog.Bool(false)}
	unset := catalog.Filters{}

	tests := []struct {
		mode               PaidMode
		wantPaid, wantFree bool
		wantUnset          bool
	}{
		{PaidAll, true, true, true},
		{PaidMode(""), true, true, true},
		{PaidMode("bogus"), true, true, true},
		{PaidOnly, true, false, false},
		{PaidFree, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.wantPaid, MatchesPaid(paid, tt.mode))
			assert.Equal(t, tt.wantFree, MatchesPaid(free, tt.mode))
			assert.Equal(t, tt.wantUnset, MatchesPaid(unset, tt.mode))
		})
	}
}
