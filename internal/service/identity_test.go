package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgo/retreats/api/internal/model"
	"github.com/forgo/retreats/api/internal/testing/fixtures"
	"github.com/forgo/retreats/api/pkg/slug"
)

func TestIdentityOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Abbey of Gethsemani", "abbey-of-gethsemani"},
		{"Kripalu Center for Yoga & Health", "kripalu-center-for-yoga-health"},
		{"Taizé Community", "taize-community"},
		{"Anam Cara Writer's and Artist's Retreat", "anam-cara-writer-s-and-artist-s-retreat"},
		{"  Spaced   Out  ", "spaced-out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := fixtures.Retreat(fixtures.WithName(tt.name))
			id := IdentityOf(&r)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, id, slug.Make(id), "identity is a fixed point of slugify")
		})
	}
}

func TestResolveIn(t *testing.T) {
	t.Parallel()

	rs := []model.Retreat{
		fixtures.Retreat(fixtures.WithName("Abbey of Gethsemani"), fixtures.WithPrice(0)),
		fixtures.Retreat(fixtures.WithName("Plum Village")),
	}

	got, ok := resolveIn(rs, "abbey-of-gethsemani")
	assert.True(t, ok)
	assert.Equal(t, "Abbey of Gethsemani", got.Name)

	_, ok = resolveIn(rs, "nonexistent-slug")
	assert.False(t, ok)

	_, ok = resolveIn(rs, "")
	assert.False(t, ok)

	_, ok = resolveIn(rs, "Plum Village")
	assert.False(t, ok, "lookup is by slug, not by name")

	_, ok = resolveIn(nil, "plum-village")
	assert.False(t, ok)
}
