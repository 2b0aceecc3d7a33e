package config

import (
	_ "embed"
	"fmt"
	"os"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var defaultTiers []byte

// цвет для пользователей без открытого уровня
const NoTierColor = "#666666"

// TierTable - упорядоченный неизменяемый каталог уровней
type TierTable struct {
	tiers []models.Tier
}

// LoadTiers загружает каталог из файла, при пустом пути - встроенный
func LoadTiers(path string) (*TierTable, error) {
	data := defaultTiers
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read tiers file: %w", err)
		}
	}
	return ParseTiers(data)
}

func ParseTiers(data []byte) (*TierTable, error) {
	var tiers []models.Tier
	if err := yaml.Unmarshal(data, &tiers); err != nil {
		return nil, fmt.Errorf("parse tiers: %w", err)
	}
	if err := validateTiers(tiers); err != nil {
		return nil, err
	}
	return &TierTable{tiers}, nil
}

func MustDefaultTiers() *TierTable {
	t, err := ParseTiers(defaultTiers)
	if err != nil {
		panic(err)
	}
	return t
}

func validateTiers(tiers []models.Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("tier catalog is empty")
	}
	ids := make(map[string]struct{}, len(tiers))
	var prev int64
	for i, t := range tiers {
		if t.ID == "" || t.Name == "" {
			return fmt.Errorf("tier %d: id and name are required", i)
		}
		if _, ok := ids[t.ID]; ok {
			return fmt.Errorf("tier %s: duplicate id", t.ID)
		}
		ids[t.ID] = struct{}{}
		if t.PointsRequired <= 0 {
			return fmt.Errorf("tier %s: pointsRequired must be positive", t.ID)
		}
		if i > 0 && t.PointsRequired <= prev {
			return fmt.Errorf("tier %s: pointsRequired %d must be greater than %d", t.ID, t.PointsRequired, prev)
		}
		if t.Reward <= 0 {
			return fmt.Errorf("tier %s: reward must be positive", t.ID)
		}
		prev = t.PointsRequired
	}
	return nil
}

// All возвращает копию каталога
func (t *TierTable) All() []models.Tier {
	out := make([]models.Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

func (t *TierTable) Get(id string) (models.Tier, bool) {
	for _, tier := range t.tiers {
		if tier.ID == id {
			return tier, true
		}
	}
	return models.Tier{}, false
}

// Highest - старший уровень, доступный при данном балансе
func (t *TierTable) Highest(balance int64) (models.Tier, bool) {
	var found models.Tier
	var ok bool
	for _, tier := range t.tiers {
		if balance >= tier.PointsRequired {
			found, ok = tier, true
		}
	}
	return found, ok
}
