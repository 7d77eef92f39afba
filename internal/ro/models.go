package ro

// Item is the database record for one Ragnarok Online item.
type Item struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Slots         int    `json:"slots"`
	Attack        int    `json:"attack"`
	Defense       int    `json:"defense"`
	Weight        int    `json:"weight"`
	RequiredLevel int    `json:"requiredLevel"`
	Price         int    `json:"price"`
}

// Monster is the database record for one Ragnarok Online monster.
type Monster struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Stats MonsterStats `json:"stats"`
}

type MonsterStats struct {
	Level          int           `json:"level"`
	Health         int           `json:"health"`
	Attack         MonsterAttack `json:"attack"`
	Defense        int           `json:"defense"`
	MagicDefense   int           `json:"magicDefense"`
	BaseExperience int           `json:"baseExperience"`
	JobExperience  int           `json:"jobExperience"`
}

type MonsterAttack struct {
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}
