package grid

import (
	"sort"

	"github.com/mgaray/aula/internal/session"
)

// Placement is a session's vertical placement within its day row: which
// lane it occupies and how many lanes its overlap cluster was split into.
// Sessions outside any multi-member cluster get Lanes == 1.
type Placement struct {
	Lane  int
	Lanes int
}

// ComputeLanes partitions one day's sessions into overlap clusters and
// assigns each session a lane by first-fit interval packing.
//
// Clusters are formed by chaining: walking the sessions sorted by start
// time, a session joins the current cluster when it starts before the
// latest end seen so far. The test is transitive, so two sessions that
// never overlap directly can share a cluster through intermediates; that
// matches the rendered layout and is intentional, not a bug to fix with
// proper overlap-graph coloring.
func ComputeLanes(sessions []*session.Session) map[int64]Placement {
	result := make(map[int64]Placement, len(sessions))
	if len(sessions) == 0 {
		return result
	}

	ordered := make([]*session.Session, len(sessions))
	copy(ordered, sessions)

	// Start ascending, longer block first on ties so greedy packing
	// keeps long blocks in low lanes.
	sort.SliceStable(ordered, func(i, j int) bool {
		si := session.TimeToMinutes(ordered[i].StartTime)
		sj := session.TimeToMinutes(ordered[j].StartTime)
		if si != sj {
			return si < sj
		}
		return session.TimeToMinutes(ordered[i].EndTime) > session.TimeToMinutes(ordered[j].EndTime)
	})

	var cluster []*session.Session
	clusterEnd := -1

	flush := func() {
		if len(cluster) == 0 {
			return
		}
		packCluster(cluster, result)
		cluster = cluster[:0]
	}

	for _, s := range ordered {
		start := session.TimeToMinutes(s.StartTime)
		end := session.TimeToMinutes(s.EndTime)
		if len(cluster) > 0 && start >= clusterEnd {
			flush()
			clusterEnd = -1
		}
		cluster = append(cluster, s)
		if end > clusterEnd {
			clusterEnd = end
		}
	}
	flush()

	return result
}

// packCluster assigns lanes within one cluster by first-fit: each member
// goes into the leftmost lane whose last session has ended by the
// member's start, or opens a new lane.
func packCluster(cluster []*session.Session, result map[int64]Placement) {
	var laneEnds []int // end minutes of the most recent session per lane

	for _, s := range cluster {
		start := session.TimeToMinutes(s.StartTime)
		end := session.TimeToMinutes(s.EndTime)

		lane := -1
		for i, laneEnd := range laneEnds {
			if laneEnd <= start {
				lane = i
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = end
		result[s.ID] = Placement{Lane: lane}
	}

	for _, s := range cluster {
		p := result[s.ID]
		p.Lanes = len(laneEnds)
		result[s.ID] = p
	}
}
