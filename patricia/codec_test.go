package patricia

import (
	"testing"

	"github.com/forestrie/go-h3dnames/binser"
	"github.com/forestrie/go-h3dnames/internal/namestesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

type bytesWriter struct {
	data []byte
}

func (b *bytesWriter) serialize(tree *Tree) error {
	w := binser.NewWriter()
	if err := w.WriteValue(tree); err != nil {
		return err
	}
	b.data = w.Bytes()
	return nil
}

func encode(t *testing.T, tree *Tree) []byte {
	t.Helper()
	var w bytesWriter
	require.NoError(t, w.serialize(tree))
	return w.data
}

func decode(t *testing.T, data []byte) *Tree {
	t.Helper()
	tree := New()
	require.NoError(t, binser.NewReader(data).Deserialize(tree))
	return tree
}

func TestSkeletonScenarioRoundTrip(t *testing.T) {
	tree := newTree(t, "Head", "Hand_L", "Hand_R", "Hip")
	data := encode(t, tree)

	// 5 records, then "Head\0Hand_L\0Hand_R\0Hip\0".
	require.Len(t, data, 5*NodeRecordBytes+5+7+7+4)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 2, 0, 0, 0, 0, 0, 0, 0}, data[0:12])
	assert.Equal(t, []byte{30, 0, 0, 0, 4, 0, 1, 0, 60, 0, 0, 0}, data[12:24])
	assert.Equal(t, "Head\x00Hand_L\x00Hand_R\x00Hip\x00", string(data[60:]))

	decoded := decode(t, data)
	assert.Equal(t, []string{"Head", "Hand_L", "Hand_R", "Hip"}, decoded.Names())
	assert.False(t, decoded.Stale())

	nodes, err := decoded.Nodes()
	require.NoError(t, err)
	golden.Assert(t, FormatNodes(nodes), "skeleton_scenario.golden")
}

func TestRoundTripIsByteIdentical(t *testing.T) {
	tc := namestesting.NewTestContext(t, namestesting.TestConfig{Seed: 42, TestLabelPrefix: "TestRoundTripIsByteIdentical"})

	sets := map[string][]string{
		"empty":         nil,
		"single":        {"Origin"},
		"skeleton":      namestesting.SkeletonNames(),
		"shared prefix": namestesting.SharedPrefixNames("Mesh_", 130),
		"random":        tc.RandomNames(1500, 32),
	}
	for label, names := range sets {
		t.Run(label, func(t *testing.T) {
			first := encode(t, newTree(t, names...))

			decoded := New(WithLogger(tc.GetLog()))
			require.NoError(t, binser.NewReader(first).Deserialize(decoded))
			assert.Equal(t, len(names), decoded.Len())
			if len(names) > 0 {
				assert.Equal(t, names, decoded.Names())
			}

			second := encode(t, decoded)
			assert.Equal(t, first, second)

			for want, name := range names {
				got, err := decoded.FindIndex(name)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestEmptyTreeEncoding(t *testing.T) {
	data := encode(t, New())
	assert.Equal(t, make([]byte, NodeRecordBytes), data)

	decoded := decode(t, data)
	assert.Equal(t, 0, decoded.Len())
	count, err := decoded.NodeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeserializeStopsAtReferencedCount(t *testing.T) {
	data := encode(t, newTree(t, "Head", "Hand_L", "Hand_R", "Hip"))

	// Trailing bytes after the array (here, the string section) are not read.
	r := binser.NewReader(data)
	require.NoError(t, r.Deserialize(New()))
	assert.Equal(t, 5*NodeRecordBytes, r.Pos())
}

func TestDeserializeReplacesKeys(t *testing.T) {
	data := encode(t, newTree(t, "Head", "Hip"))

	tree := newTree(t, "Foot", "Knee", "Leg")
	require.NoError(t, binser.NewReader(data).Deserialize(tree))
	assert.Equal(t, []string{"Head", "Hip"}, tree.Names())

	i, err := tree.FindIndex("Foot")
	require.NoError(t, err)
	assert.Equal(t, NotFound, i)
}

func TestDeserializeMalformed(t *testing.T) {
	t.Run("truncated array", func(t *testing.T) {
		w := binser.NewWriter()
		// The sentinel references index 3 but only one more node follows.
		require.NoError(t, w.WriteRecord(Node{RefBit: SentinelRefBit, Left: 3}))
		require.NoError(t, w.WriteRecord(Node{RefBit: 8, Left: 0, Right: 1}))

		tree := newTree(t, "Head")
		err := binser.NewReader(w.Bytes()).Deserialize(tree)
		require.ErrorIs(t, err, ErrMalformedStream)
		require.ErrorIs(t, err, binser.ErrShortRead)
		assert.Equal(t, []string{"Head"}, tree.Names())
	})

	t.Run("truncated inside string pointers", func(t *testing.T) {
		data := encode(t, newTree(t, "Head", "Hand_L", "Hand_R", "Hip"))
		err := binser.NewReader(data[:30]).Deserialize(New())
		require.ErrorIs(t, err, ErrMalformedStream)
	})

	t.Run("named sentinel", func(t *testing.T) {
		w := binser.NewWriter()
		require.NoError(t, w.WriteRecord(Node{Name: "Root"}))
		err := binser.NewReader(w.Bytes()).Deserialize(New())
		require.ErrorIs(t, err, ErrMalformedStream)
	})

	t.Run("empty input", func(t *testing.T) {
		err := binser.NewReader(nil).Deserialize(New())
		require.ErrorIs(t, err, ErrMalformedStream)
	})
}

func TestSerializeRejectsUnencodableName(t *testing.T) {
	tree := newTree(t, "Head", "a\x00b")
	var w bytesWriter
	require.ErrorIs(t, w.serialize(tree), binser.ErrStringHasNUL)
}
