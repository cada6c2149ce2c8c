package corpus

import (
	"github.com/Dittner/DerTutor/internal/config"
)

// Corpora holds the handles of the pre-built corpus stores, opened once
// at startup. A store whose config flag is unset stays nil.
type Corpora struct {
	DePron *KeyValueDB
	EnPron *KeyValueDB
	EnRu   *JSONFileDB
}

func Open(cfg config.CorpusConfig) (*Corpora, error) {
	corpora := &Corpora{}

	if cfg.ConnectDePron {
		db, err := OpenKeyValueDB(cfg.DePronPath)
		if err != nil {
			return nil, err
		}
		corpora.DePron = db
	}
	if cfg.ConnectEnPron {
		db, err := OpenKeyValueDB(cfg.EnPronPath)
		if err != nil {
			corpora.Close()
			return nil, err
		}
		corpora.EnPron = db
	}
	if cfg.ConnectEnRu {
		db, err := OpenJSONFileDB(cfg.EnRuPath)
		if err != nil {
			corpora.Close()
			return nil, err
		}
		corpora.EnRu = db
	}

	return corpora, nil
}

func (c *Corpora) Close() {
	if c.DePron != nil {
		c.DePron.Close()
	}
	if c.EnPron != nil {
		c.EnPron.Close()
	}
	if c.EnRu != nil {
		c.EnRu.Close()
	}
}
