package progrock_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	adapter "go.trai.ch/extprune/internal/adapters/telemetry/progrock"
)

func TestJournal_MergesUpdatesInFirstSeenOrder(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	journal := adapter.NewJournal()

	require.NoError(t, journal.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "2", Name: "remove b.b-1.0.0"},
			{Id: "1", Name: "remove a.a-1.0.0"},
		},
	}))
	require.NoError(t, journal.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "2", Name: "remove b.b-1.0.0", Cached: true}},
		Logs: []*progrock.VertexLog{
			{Vertex: "2", Data: []byte("not in keep")},
			{Vertex: "2", Data: []byte(" list\n")},
			{Vertex: "3", Data: []byte("orphan\n")},
		},
	}))
	require.NoError(t, journal.Close())

	var buf bytes.Buffer
	_, err := journal.WriteTo(&buf)
	require.NoError(t, err)

	assert.Equal(t, "\nRemoval progress:\n"+
		"  ~ remove b.b-1.0.0 (not in keep list)\n"+
		"  ● remove a.a-1.0.0\n", buf.String())
}
