package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Key_Is_Commutative(t *testing.T) {
	req := require.New(t)
	pairs := [][2]string{
		{"alice", "bob"},
		{"bob", "alice"},
		{"zed", "aaron"},
		{"u1AbC", "u9XyZ"},
	}
	for _, p := range pairs {
		req.Equal(Key(p[0], p[1]), Key(p[1], p[0]))
	}
}

func Test_Key_Distinct_Pairs_Never_Collide(t *testing.T) {
	req := require.New(t)
	req.NotEqual(Key("alice", "bob"), Key("alice", "carol"))
	req.NotEqual(Key("alice", "bob"), Key("bob", "carol"))

	ids := []string{"a", "b", "c", "d", "e"}
	seen := make(map[string][2]string)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			k := Key(a, b)
			prev, dup := seen[k]
			req.False(dup, "pairs %v and [%s %s] collided on %q", prev, a, b, k)
			seen[k] = [2]string{a, b}
		}
	}
}

func Test_Pairwise_Other_And_Placeholder(t *testing.T) {
	req := require.New(t)
	c := PairwiseConversation{Participants: [2]string{"alice", "bob"}}
	req.Equal("bob", c.Other("alice"))
	req.Equal("alice", c.Other("bob"))
	req.Empty(c.Other("mallory"))
	req.True(c.Placeholder())

	c.History = append(c.History, Message{SenderID: "alice", Content: "hi"})
	req.False(c.Placeholder())
}

func Test_Group_HasMember(t *testing.T) {
	req := require.New(t)
	g := GroupConversation{ID: "g1", Name: "party", Members: []string{"gm", "p1"}}
	req.True(g.HasMember("p1"))
	req.False(g.HasMember("p2"))
}
