package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	owner := NewPlayer(1, "Alice")
	tpl := &NpcTemplate{ID: 12077, Name: "Wolf"}

	cases := []struct {
		cha  Creature
		kind Kind
		name string
	}{
		{NewNpc(2, tpl), KindNpc, "Wolf"},
		{owner, KindPlayer, "Alice"},
		{NewSummon(3, owner, tpl), KindSummon, "Wolf"},
		{NewDoor(24190001, "Gludio Castle Gate"), KindDoor, "Gludio Castle Gate"},
		{NewFakePlayer(4, owner), KindOther, "Alice"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.cha.Kind(), tc.kind.String())
		assert.Equal(t, tc.name, tc.cha.Name())
	}
}

func TestPlayerRename(t *testing.T) {
	p := NewPlayer(1, "Alice")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.SetName("Bob")
			_ = p.Name()
		}()
	}
	wg.Wait()
	assert.Equal(t, "Bob", p.Name())
}

func TestSkillIsCustom(t *testing.T) {
	assert.False(t, NewSkill(1204, 2, "Wind Walk").IsCustom())
	assert.True(t, (&Skill{ID: 90001, DisplayID: 1204}).IsCustom())
}

func TestItemRef(t *testing.T) {
	tpl := &ItemTemplate{ID: 57, Name: "Adena"}
	var refs = []ItemRef{tpl, &Item{ObjectID: 1, Count: 100, Template: tpl}}
	for _, r := range refs {
		assert.Equal(t, int32(57), r.ItemID())
	}
}
