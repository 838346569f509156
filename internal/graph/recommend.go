package graph

import "sort"

const (
	// 二度好友基础分与每个共同好友的加分
	secondDegreeBase  = 10.0
	mutualFriendBonus = 2.0
	// 三度好友固定分
	thirdDegreeBase = 2.0

	// 社区推荐：网络成员按距离分档的贡献
	communityWeightD1 = 5.0
	communityWeightD2 = 2.0
	communityWeightD3 = 0.5

	MaxUserRecommendations      = 10
	MaxCommunityRecommendations = 6
)

// Mutual 共同好友推荐条目
type Mutual struct {
	ID          uint64 `json:"id"`
	MutualCount int    `json:"mutual_friends"`
}

// Weighted 多度加权推荐条目
type Weighted struct {
	ID     uint64  `json:"id"`
	Degree int     `json:"degree"`
	Score  float64 `json:"score"`
}

// MemberSet 社区推荐打分需要的最小视图
type MemberSet struct {
	ID      uint64
	Members map[uint64]struct{}
}

// CommunityScore 社区推荐条目
type CommunityScore struct {
	ID    uint64  `json:"id"`
	Score float64 `json:"score"`
}

// MutualRecommendations 经过共同好友的二跳候选，按共同好友数降序、id 升序。
// 候选排除自己与现有直接好友。
func MutualRecommendations(a Adjacency, userID uint64) []Mutual {
	myFriends, ok := a[userID]
	if !ok {
		return nil
	}
	excluded := map[uint64]struct{}{userID: {}}
	for _, f := range myFriends {
		excluded[f] = struct{}{}
	}
	freq := make(map[uint64]int)
	for _, f := range myFriends {
		for _, candidate := range a[f] {
			if _, skip := excluded[candidate]; !skip {
				freq[candidate]++
			}
		}
	}
	out := make([]Mutual, 0, len(freq))
	for id, n := range freq {
		out = append(out, Mutual{ID: id, MutualCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MutualCount != out[j].MutualCount {
			return out[i].MutualCount > out[j].MutualCount
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// WeightedRecommendations 二三度加权推荐：二度 10 分 + 每个共同好友 2 分，三度 2 分。
// 距离 0/1 完全排除；孤立用户得到空结果。
func WeightedRecommendations(a Adjacency, userID uint64) []Weighted {
	dist := Distances(a, userID)
	scores := make(map[uint64]float64)
	for id, d := range dist {
		switch d {
		case 0, 1:
			continue
		case 2:
			scores[id] = secondDegreeBase + mutualFriendBonus*float64(mutualCount(a, userID, id))
		case 3:
			scores[id] = thirdDegreeBase
		}
	}
	out := make([]Weighted, 0, len(scores))
	for id, s := range scores {
		out = append(out, Weighted{ID: id, Degree: dist[id], Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > MaxUserRecommendations {
		out = out[:MaxUserRecommendations]
	}
	return out
}

// CommunityRecommendations 未加入的社区按 3 跳内成员的距离权重累加打分
func CommunityRecommendations(a Adjacency, userID uint64, comms []MemberSet) []CommunityScore {
	dist := Distances(a, userID)
	scores := make(map[uint64]float64)
	for memberID, d := range dist {
		if d == 0 {
			continue
		}
		var weight float64
		switch d {
		case 1:
			weight = communityWeightD1
		case 2:
			weight = communityWeightD2
		default:
			weight = communityWeightD3
		}
		for _, c := range comms {
			if _, joined := c.Members[userID]; joined {
				continue
			}
			if _, in := c.Members[memberID]; in {
				scores[c.ID] += weight
			}
		}
	}
	out := make([]CommunityScore, 0, len(scores))
	for id, s := range scores {
		out = append(out, CommunityScore{ID: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > MaxCommunityRecommendations {
		out = out[:MaxCommunityRecommendations]
	}
	return out
}

func mutualCount(a Adjacency, u, v uint64) int {
	n := 0
	vFriends := a[v]
	for _, f := range a[u] {
		i := sort.Search(len(vFriends), func(i int) bool { return vFriends[i] >= f })
		if i < len(vFriends) && vFriends[i] == f {
			n++
		}
	}
	return n
}
