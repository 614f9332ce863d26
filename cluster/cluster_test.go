package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/refine2d/cluster"
	"github.com/gomesh/refine2d/core"
	"github.com/gomesh/refine2d/geom"
)

func TestAnalyzeFindsSmallAngleCluster(t *testing.T) {
	require := require.New(t)

	m := core.NewMesh()
	apex := m.Insert(geom.Point{X: 0, Y: 0})
	near1 := m.Insert(geom.Point{X: 10, Y: 0})
	near2 := m.Insert(geom.Point{X: 10, Y: 1}) // ~5.7 degrees from near1 as seen from apex
	far := m.Insert(geom.Point{X: 0, Y: 10})   // 90 degrees away, no cluster partner

	m.InsertSegment(apex, near1)
	m.InsertSegment(apex, near2)
	m.InsertSegment(apex, far)

	clusters := cluster.Analyze(m, apex)
	require.Len(clusters, 1)
	require.ElementsMatch(clusters[0].Segments, []core.VertexID{near1, near2})
}

func TestAnalyzeNoClusterWhenSegmentsSpreadOut(t *testing.T) {
	require := require.New(t)

	m := core.NewMesh()
	apex := m.Insert(geom.Point{X: 0, Y: 0})
	a := m.Insert(geom.Point{X: 10, Y: 0})
	b := m.Insert(geom.Point{X: 0, Y: 10})
	c := m.Insert(geom.Point{X: -10, Y: 0})

	m.InsertSegment(apex, a)
	m.InsertSegment(apex, b)
	m.InsertSegment(apex, c)

	require.Empty(cluster.Analyze(m, apex))
}
