package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func ids(ps []model.Product) []uint64 {
	out := make([]uint64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "a", Price: decimal.RequireFromString("10.00"), Category: "Audio"},
		{ID: 2, Name: "b", Price: decimal.RequireFromString("20.00"), Category: "Video"},
		{ID: 3, Name: "c", Price: decimal.RequireFromString("30.00"), Category: "audio"},
		{ID: 4, Name: "d", Price: decimal.RequireFromString("40.00"), Category: "Audio"},
	}
}

func TestListNoFilterReturnsAllInOrder(t *testing.T) {
	c := New(testProducts())
	assert.Equal(t, []uint64{1, 2, 3, 4}, ids(c.List(Filter{})))
}

func TestListFilters(t *testing.T) {
	c := New(testProducts())

	cases := []struct {
		name string
		f    Filter
		want []uint64
	}{
		{"category any case", Filter{Category: "AUDIO"}, []uint64{1, 3, 4}},
		{"category is exact not substring", Filter{Category: "aud"}, []uint64{}},
		{"min inclusive", Filter{MinPrice: price("20")}, []uint64{2, 3, 4}},
		{"max inclusive", Filter{MaxPrice: price("30")}, []uint64{1, 2, 3}},
		{"all predicates", Filter{Category: "audio", MinPrice: price("15"), MaxPrice: price("35")}, []uint64{3}},
		{"empty range", Filter{MinPrice: price("50")}, []uint64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.List(tc.f)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestGet(t *testing.T) {
	c := New(testProducts())

	p, err := c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "b", p.Name)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListByCategoryIsCaseInsensitive(t *testing.T) {
	c := New(testProducts())
	assert.Equal(t, c.ListByCategory("audio"), c.ListByCategory("AUDIO"))

	none := c.ListByCategory("Nope")
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCategoriesDistinctFirstOccurrence(t *testing.T) {
	c := New(testProducts())
	assert.Equal(t, []string{"Audio", "Video", "audio"}, c.Categories())
}

func TestNewCopiesInput(t *testing.T) {
	in := testProducts()
	c := New(in)
	in[0].Name = "changed"

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name)
}

func TestSeedCatalog(t *testing.T) {
	c := New(Seed())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"Computadoras", "Móviles", "Audio", "Monitores", "Periféricos"}, c.Categories())

	audio := c.ListByCategory("audio")
	require.Len(t, audio, 1)
	assert.Equal(t, "Auriculares Pro", audio[0].Name)
}

type stubSource struct {
	products []model.Product
	err      error
}

func (s stubSource) ListAll(context.Context) ([]model.Product, error) { return s.products, s.err }

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), stubSource{products: testProducts()})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	boom := errors.New("boom")
	_, err = Load(context.Background(), stubSource{err: boom})
	assert.ErrorIs(t, err, boom)
}
