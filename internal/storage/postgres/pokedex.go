package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
)

// PokedexRepository reads and writes the species, moves, and species_moves
// tables.
type PokedexRepository struct {
	db *pgxpool.Pool
}

// NewPokedexRepository creates a PokedexRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPokedexRepository(db *pgxpool.Pool) *PokedexRepository {
	return &PokedexRepository{db: db}
}

// Load reads all three tables and builds a validated Pokedex.
// Species and moves are ordered by id; links keep their insertion order.
//
// Postcondition: Returns a Pokedex or a non-nil error. Empty tables fail
// with pokedex.ErrEmptyTable.
func (r *PokedexRepository) Load(ctx context.Context) (*pokedex.Pokedex, error) {
	species, err := r.loadSpecies(ctx)
	if err != nil {
		return nil, err
	}
	moves, err := r.loadMoves(ctx)
	if err != nil {
		return nil, err
	}
	links, err := r.loadLinks(ctx)
	if err != nil {
		return nil, err
	}
	p, err := pokedex.New(species, moves, links)
	if err != nil {
		return nil, fmt.Errorf("building pokedex from database: %w", err)
	}
	return p, nil
}

func (r *PokedexRepository) loadSpecies(ctx context.Context) ([]pokedex.Species, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, hp, attack, defense, special_attack, special_defense, speed
		FROM species ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying species: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (pokedex.Species, error) {
		var s pokedex.Species
		err := row.Scan(&s.ID, &s.Name,
			&s.Stats.HP, &s.Stats.Attack, &s.Stats.Defense,
			&s.Stats.SpecialAttack, &s.Stats.SpecialDefense, &s.Stats.Speed)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning species: %w", err)
	}
	return out, nil
}

func (r *PokedexRepository) loadMoves(ctx context.Context) ([]pokedex.Move, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, priority, accuracy, power FROM moves ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying moves: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (pokedex.Move, error) {
		var m pokedex.Move
		err := row.Scan(&m.ID, &m.Name, &m.Priority, &m.Accuracy, &m.Power)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning moves: %w", err)
	}
	return out, nil
}

func (r *PokedexRepository) loadLinks(ctx context.Context) ([]pokedex.Link, error) {
	rows, err := r.db.Query(ctx, `SELECT species_id, move_id FROM species_moves ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying species_moves: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (pokedex.Link, error) {
		var l pokedex.Link
		err := row.Scan(&l.SpeciesID, &l.MoveID)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning species_moves: %w", err)
	}
	return out, nil
}

// Store replaces the contents of all three tables with p in one transaction.
//
// Precondition: p must be a validated Pokedex.
// Postcondition: On success the tables hold exactly p's rows, links in p's
// order. On failure nothing is changed.
func (r *PokedexRepository) Store(ctx context.Context, p *pokedex.Pokedex) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE species_moves, moves, species RESTART IDENTITY`); err != nil {
			return fmt.Errorf("clearing pokedex tables: %w", err)
		}

		batch := &pgx.Batch{}
		for _, s := range p.AllSpecies() {
			batch.Queue(`
				INSERT INTO species (id, name, hp, attack, defense, special_attack, special_defense, speed)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				s.ID, s.Name, s.Stats.HP, s.Stats.Attack, s.Stats.Defense,
				s.Stats.SpecialAttack, s.Stats.SpecialDefense, s.Stats.Speed)
		}
		for _, m := range p.AllMoves() {
			batch.Queue(`INSERT INTO moves (id, name, priority, accuracy, power) VALUES ($1, $2, $3, $4, $5)`,
				m.ID, m.Name, m.Priority, m.Accuracy, m.Power)
		}
		for _, l := range p.AllLinks() {
			batch.Queue(`INSERT INTO species_moves (species_id, move_id) VALUES ($1, $2)`,
				l.SpeciesID, l.MoveID)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting pokedex rows: %w", err)
		}
		return nil
	})
}
