package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// Neo4jStore Neo4j 语料存储
//
// 把训练示例存为 (:Example) 节点，position 属性保持插入顺序。
type Neo4jStore struct {
	driver neo4j.DriverWithContext
}

// Neo4jConfig Neo4j 配置
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// NewNeo4jStore 创建 Neo4j 语料存储
func NewNeo4jStore(config Neo4jConfig) (*Neo4jStore, error) {
	if config.URI == "" {
		config.URI = "bolt://localhost:7687"
	}

	auth := neo4j.NoAuth()
	if config.Username != "" && config.Password != "" {
		auth = neo4j.BasicAuth(config.Username, config.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(config.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	store := &Neo4jStore{driver: driver}
	if err := store.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return store, nil
}

// createIndexes 创建索引
func (s *Neo4jStore) createIndexes(ctx context.Context) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.Run(ctx,
		"CREATE INDEX example_position IF NOT EXISTS FOR (e:Example) ON (e.position)", nil)
	return err
}

// Load 按插入顺序加载全部训练示例
func (s *Neo4jStore) Load(ctx context.Context) ([]knowledge.Example, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	query := `MATCH (e:Example) RETURN e.input AS input, e.output AS output,
		e.weight AS weight, e.metadata AS metadata ORDER BY e.position`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var examples []knowledge.Example
	for result.Next(ctx) {
		record := result.Record()

		ex := knowledge.Example{Weight: knowledge.DefaultWeight}
		if v, ok := record.Get("input"); ok && v != nil {
			ex.Input = v.(string)
		}
		if v, ok := record.Get("output"); ok && v != nil {
			if err := json.Unmarshal([]byte(v.(string)), &ex.Output); err != nil {
				return nil, fmt.Errorf("failed to unmarshal output: %w", err)
			}
		}
		if v, ok := record.Get("weight"); ok && v != nil {
			ex.Weight = float32(v.(float64))
		}
		if v, ok := record.Get("metadata"); ok && v != nil {
			if raw := v.(string); raw != "" {
				if err := json.Unmarshal([]byte(raw), &ex.Metadata); err != nil {
					return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
				}
			}
		}

		examples = append(examples, ex)
	}

	return examples, result.Err()
}

// Save 整体保存训练示例
func (s *Neo4jStore) Save(ctx context.Context, examples []knowledge.Example) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if _, err := tx.Run(ctx, `MATCH (e:Example) DETACH DELETE e`, nil); err != nil {
			return nil, err
		}

		query := `CREATE (e:Example {position: $position, input: $input,
			output: $output, weight: $weight, metadata: $metadata})`

		for i, ex := range examples {
			output, err := json.Marshal(ex.Output)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal output: %w", err)
			}

			metadata := ""
			if ex.Metadata != nil {
				data, err := json.Marshal(ex.Metadata)
				if err != nil {
					return nil, fmt.Errorf("failed to marshal metadata: %w", err)
				}
				metadata = string(data)
			}

			params := map[string]interface{}{
				"position": i,
				"input":    ex.Input,
				"output":   string(output),
				"weight":   float64(ex.Weight),
				"metadata": metadata,
			}
			if _, err := tx.Run(ctx, query, params); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})

	return err
}

// Close 关闭驱动连接
func (s *Neo4jStore) Close() error {
	return s.driver.Close(context.Background())
}

// 编译时接口检查
var _ Store = (*Neo4jStore)(nil)
