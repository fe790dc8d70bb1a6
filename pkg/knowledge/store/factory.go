package store

// New 根据配置创建语料存储
func New(config *Config) (Store, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Type {
	case StoreTypeFile:
		return NewFileStore(config.Path)
	case StoreTypeSQLite:
		return NewSQLiteStore(config.Path)
	case StoreTypeNeo4j:
		return NewNeo4jStore(Neo4jConfig{
			URI:      config.Neo4jURI,
			Username: config.Neo4jUsername,
			Password: config.Neo4jPassword,
		})
	case StoreTypeMemory:
		fallthrough
	default:
		return NewMemoryStore(), nil
	}
}
