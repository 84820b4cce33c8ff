package balance_test

import (
	"math/rand"
	"strconv"

	"github.com/okian/squads/internal/domain/model"
)

func player(id string, skating, shooting, checking int) model.Player {
	return model.Player{ID: id, Name: id, Skills: model.NewProfile(skating, shooting, checking)}
}

func mustPool(players ...model.Player) *model.Pool {
	p, err := model.NewPool(players...)
	if err != nil {
		panic(err)
	}
	return p
}

// randomPool builds a reproducible pool of n players.
func randomPool(rng *rand.Rand, n int) *model.Pool {
	players := make([]model.Player, n)
	for i := range players {
		players[i] = player("p"+strconv.Itoa(i), rng.Intn(100), rng.Intn(100), rng.Intn(100))
	}
	return mustPool(players...)
}

// accounted returns every player id across squads and pool with its count.
func accounted(squads []model.Squad, pool *model.Pool) map[string]int {
	seen := make(map[string]int)
	for _, s := range squads {
		for _, p := range s.Players {
			seen[p.ID]++
		}
	}
	for _, p := range pool.Players() {
		seen[p.ID]++
	}
	return seen
}
