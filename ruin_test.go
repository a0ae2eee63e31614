package spritegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuin_ShouldGenerateEveryVariant(t *testing.T) {
	for _, typ := range RuinTypes {
		t.Run(string(typ), func(t *testing.T) {
			assert := assert.New(t)
			g := NewRuinGenerator(Options{})

			desc, err := g.Generate(RuinConfig{RuinType: typ})
			require.NoError(t, err)

			assert.Equal(RuinWidth, desc.Sprite.Width)
			assert.Equal(RuinHeight, desc.Sprite.Height)
			assert.Equal("png", desc.Sprite.Format)

			img, err := desc.Image()
			require.NoError(t, err)
			assert.Equal(32, img.Bounds().Dx())
			assert.Equal(32, img.Bounds().Dy())
		})
	}
}

func TestRuin_ShouldNameAndDefaultMetadata(t *testing.T) {
	assert := assert.New(t)
	g := NewRuinGenerator(Options{})

	desc, err := g.Generate(RuinConfig{RuinType: Pillar})
	require.NoError(t, err)

	assert.Equal("Pillar Ruin", desc.Name)
	assert.Equal("ancient", desc.Metadata.Age)
	assert.Equal("crumbling", desc.Metadata.Condition)
	assert.Equal("stone", desc.Metadata.Material)
	require.NotNil(t, desc.Metadata.Overgrown)
	assert.False(*desc.Metadata.Overgrown)
	assert.Empty(desc.Metadata.Severity)
	assert.Nil(desc.Metadata.Curable)
}

func TestRuin_ShouldEchoSuppliedValues(t *testing.T) {
	assert := assert.New(t)
	g := NewRuinGenerator(Options{})

	cfg := RuinConfig{RuinType: Statue, Age: "primordial", Condition: "shattered", Material: "obsidian", Overgrown: true}
	desc, err := g.Generate(cfg)
	require.NoError(t, err)

	assert.Equal("primordial", desc.Metadata.Age)
	assert.Equal("shattered", desc.Metadata.Condition)
	assert.Equal("obsidian", desc.Metadata.Material)
	assert.True(*desc.Metadata.Overgrown)
	assert.Equal(cfg, desc.Config)
}

func TestRuin_UnknownTypeFallsBackToWall(t *testing.T) {
	wall, err := NewRuinGenerator(seeded(3)).Generate(RuinConfig{RuinType: Wall})
	require.NoError(t, err)
	tower, err := NewRuinGenerator(seeded(3)).Generate(RuinConfig{RuinType: "tower"})
	require.NoError(t, err)

	assert.Equal(t, wall.Sprite.Data, tower.Sprite.Data)
	assert.Equal(t, "Tower Ruin", tower.Name)
}

func TestRuin_FoundationIsDeterministicUnlessOvergrown(t *testing.T) {
	assert := assert.New(t)
	g := NewRuinGenerator(Options{})

	a, err := g.Generate(RuinConfig{RuinType: Foundation})
	require.NoError(t, err)
	b, err := g.Generate(RuinConfig{RuinType: Foundation})
	require.NoError(t, err)
	assert.Equal(a.Sprite.Data, b.Sprite.Data)

	overgrown, err := g.Generate(RuinConfig{RuinType: Foundation, Overgrown: true})
	require.NoError(t, err)
	assert.NotEqual(a.Sprite.Data, overgrown.Sprite.Data)
}

func TestRuin_MaterialChangesColors(t *testing.T) {
	g := NewRuinGenerator(Options{})

	stone, err := g.Generate(RuinConfig{RuinType: Foundation, Material: "stone"})
	require.NoError(t, err)
	marble, err := g.Generate(RuinConfig{RuinType: Foundation, Material: "marble"})
	require.NoError(t, err)
	unknown, err := g.Generate(RuinConfig{RuinType: Foundation, Material: "cheese"})
	require.NoError(t, err)

	assert.NotEqual(t, stone.Sprite.Data, marble.Sprite.Data)
	assert.Equal(t, stone.Sprite.Data, unknown.Sprite.Data)
}

func TestRuin_SeededVariantsAreReproducible(t *testing.T) {
	for _, typ := range RuinTypes {
		a, err := NewRuinGenerator(seeded(11)).Generate(RuinConfig{RuinType: typ, Overgrown: true})
		require.NoError(t, err)
		b, err := NewRuinGenerator(seeded(11)).Generate(RuinConfig{RuinType: typ, Overgrown: true})
		require.NoError(t, err)
		assert.Equal(t, a.Sprite.Data, b.Sprite.Data, typ)
	}
}

func TestRuin_StyleOf(t *testing.T) {
	assert := assert.New(t)

	s := styleOf(RuinConfig{})
	assert.Equal(materials["stone"], s.base)
	assert.Equal(3, s.cracks)

	s = styleOf(RuinConfig{Material: "granite", Condition: "collapsed", Overgrown: true})
	assert.Equal(materials["granite"], s.base)
	assert.Equal(5, s.cracks)
	assert.True(s.overgrown)
}
