package main

import (
	"github.com/natelandau/valentina-sub000/internal/orchestrators/chargen"
	"github.com/natelandau/valentina-sub000/internal/orchestrators/experience"
	"github.com/natelandau/valentina-sub000/internal/orchestrators/roll"
	"github.com/natelandau/valentina-sub000/internal/pkg/idgen"
	"github.com/natelandau/valentina-sub000/internal/pkg/rng"
	"github.com/natelandau/valentina-sub000/internal/redis"
	"github.com/natelandau/valentina-sub000/internal/repositories/character"
	"github.com/natelandau/valentina-sub000/internal/repositories/ledger"
	"github.com/natelandau/valentina-sub000/internal/repositories/rolls"
)

// deps wires the Redis repositories and orchestrators for one command
// invocation
type deps struct {
	chargen    chargen.Service
	experience experience.Service
	roll       roll.Service
}

func buildDeps(seed uint64) (*deps, error) {
	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}

	characterRepo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	rollsRepo, err := rolls.NewRedis(&rolls.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	roller := rng.NewRandom()
	if seed != 0 {
		roller = rng.New(seed)
	}

	chargenSvc, err := chargen.NewOrchestrator(&chargen.Config{
		CharacterRepo: characterRepo,
		Roller:        roller,
		IDGenerator:   idgen.NewUUID("character"),
	})
	if err != nil {
		return nil, err
	}

	experienceSvc, err := experience.NewOrchestrator(&experience.Config{
		CharacterRepo: characterRepo,
		LedgerRepo:    ledgerRepo,
	})
	if err != nil {
		return nil, err
	}

	rollSvc, err := roll.NewOrchestrator(&roll.Config{
		RollsRepo: rollsRepo,
	})
	if err != nil {
		return nil, err
	}

	return &deps{
		chargen:    chargenSvc,
		experience: experienceSvc,
		roll:       rollSvc,
	}, nil
}
