// Package main 提供 qamatch 命令行工具
//
// 用法:
//
//	qamatch query <matcher> <question>          使用指定匹配器回答问题
//	qamatch interactive [matcher]               进入交互模式
//	qamatch knowledge [list]                    查看知识库内容
//	qamatch knowledge add <question> <answer>   向语料文件追加问答对
//	qamatch knowledge remove <index>            按序号删除语料条目
//	qamatch knowledge save <path>               导出合并后的知识库
//	qamatch help                                显示帮助
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	"github.com/easyops/qamatch-go/pkg/core/config"
	"github.com/easyops/qamatch-go/pkg/knowledge"
	"github.com/easyops/qamatch-go/pkg/knowledge/store"
	"github.com/easyops/qamatch-go/pkg/match"
	"github.com/easyops/qamatch-go/pkg/otel"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("QAMATCH_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	provider := otel.MustInit(cfg.Observability)
	defer provider.Shutdown(context.Background())

	switch os.Args[1] {
	case "query":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: qamatch query <matcher> <question>")
			os.Exit(1)
		}
		runQuery(cfg, os.Args[2], strings.Join(os.Args[3:], " "))
	case "interactive":
		name := cfg.Matcher.Default
		if len(os.Args) > 2 {
			name = os.Args[2]
		}
		runInteractive(cfg, name)
	case "knowledge":
		runKnowledge(cfg, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("qamatch - trainable question answering")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  query <matcher> <question>          Answer a question with the given matcher")
	fmt.Println("  interactive [matcher]               Start an interactive session")
	fmt.Println("  knowledge [list]                    Show the loaded knowledge base")
	fmt.Println("  knowledge add <question> <answer>   Append a Q/A pair to the corpus file")
	fmt.Println("  knowledge remove <index>            Remove a corpus entry by index")
	fmt.Println("  knowledge save <path>               Export the merged knowledge base")
	fmt.Println("  help                                Show this help")
	fmt.Println()
	fmt.Println("Matchers: exact, fuzzy, bm25, context")
}

// loadExamples 按配置加载训练数据
func loadExamples(cfg *config.Config) ([]knowledge.Example, error) {
	base := knowledge.New()

	if cfg.Knowledge.UseEmbedded || (cfg.Knowledge.Path == "" && cfg.Knowledge.Store.Type == "memory") {
		base.MergeEmbedded()
	}

	if cfg.Knowledge.Path != "" {
		loaded, err := knowledge.Load(cfg.Knowledge.Path)
		if err != nil {
			return nil, err
		}
		base.Merge(loaded)
	}

	if cfg.Knowledge.Store.Type != "memory" {
		s, err := store.New(&store.Config{
			Type:          store.StoreType(cfg.Knowledge.Store.Type),
			Path:          cfg.Knowledge.Store.Path,
			Neo4jURI:      cfg.Knowledge.Store.Neo4jURI,
			Neo4jUsername: cfg.Knowledge.Store.Neo4jUsername,
			Neo4jPassword: cfg.Knowledge.Store.Neo4jPassword,
		})
		if err != nil {
			return nil, err
		}
		defer s.Close()

		examples, err := s.Load(context.Background())
		if err != nil {
			return nil, err
		}
		base.AddAll(examples)
	}

	return base.Examples(), nil
}

// buildMatcher 按名称构建匹配器
func buildMatcher(cfg *config.Config, name string) (match.Matcher, error) {
	var (
		m   match.Matcher
		err error
	)

	switch name {
	case "exact":
		m = match.NewExactMatcher()
	case "fuzzy":
		opts := []match.FuzzyOption{
			match.WithThresholdFactor(float32(cfg.Matcher.Fuzzy.ThresholdFactor)),
		}
		if cfg.Matcher.Fuzzy.MaxDistance > 0 {
			opts = append(opts, match.WithMaxDistance(cfg.Matcher.Fuzzy.MaxDistance))
		}
		m, err = match.NewFuzzyMatcher(opts...)
	case "bm25":
		m, err = match.NewBM25Matcher(
			match.WithK1(float32(cfg.Matcher.BM25.K1)),
			match.WithB(float32(cfg.Matcher.BM25.B)),
		)
	case "context":
		base, berr := match.NewBM25Matcher(
			match.WithK1(float32(cfg.Matcher.BM25.K1)),
			match.WithB(float32(cfg.Matcher.BM25.B)),
		)
		if berr != nil {
			return nil, berr
		}
		m, err = match.NewContextMatcher(base,
			match.WithMaxItems(cfg.Matcher.Context.MaxItems),
			match.WithFormatter(contextFormatter(cfg.Matcher.Context.Format)),
		)
	default:
		return nil, fmt.Errorf("unknown matcher: %s", name)
	}
	if err != nil {
		return nil, err
	}

	return match.NewTracedMatcher(m, name)
}

// contextFormatter 按名称选择上下文格式
func contextFormatter(format string) match.Formatter {
	switch format {
	case "list":
		return match.ListFormat
	case "sentence":
		return match.SentenceFormat
	default:
		return match.QAPairsFormat
	}
}

func runQuery(cfg *config.Config, matcherName, question string) {
	logger := otel.GetLogger()

	examples, err := loadExamples(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading knowledge: %v\n", err)
		os.Exit(1)
	}

	m, err := buildMatcher(cfg, matcherName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m.Train(examples)
	logger.Debug("matcher trained", "matcher", matcherName, "examples", len(examples))

	fmt.Println(m.Predict(question).String())
}

func runInteractive(cfg *config.Config, matcherName string) {
	examples, err := loadExamples(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading knowledge: %v\n", err)
		os.Exit(1)
	}

	m, err := buildMatcher(cfg, matcherName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	m.Train(examples)

	// 交互模式下启用上下文记录
	var ctxMatcher *match.ContextMatcher
	if tm, ok := m.(*match.TracedMatcher); ok {
		if cm, ok := tm.Unwrap().(*match.ContextMatcher); ok {
			ctxMatcher = cm
		}
	}

	fmt.Printf("qamatch interactive (%s, %d examples)\n", matcherName, len(examples))
	fmt.Println("Type a question and press Enter. Type 'quit' to exit.")
	if ctxMatcher != nil {
		fmt.Println("Type 'clear' to reset the conversation context.")
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return
		case "clear":
			if ctxMatcher != nil {
				ctxMatcher.ClearContext()
				fmt.Println("Context cleared.")
			}
			continue
		}

		result := m.Predict(input)
		fmt.Println(result.String())

		if ctxMatcher != nil && !match.IsSentinel(result) {
			ctxMatcher.AddContext(input, result)
		}
	}
}

func runKnowledge(cfg *config.Config, args []string) {
	if len(args) == 0 || args[0] == "list" {
		examples, err := loadExamples(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading knowledge: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%d examples\n", len(examples))
		for i, ex := range examples {
			fmt.Printf("%3d. [w=%.1f] %s -> %s\n", i+1, ex.Weight, ex.Input, ex.Output.String())
		}
		return
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: qamatch knowledge add <question> <answer>")
			os.Exit(1)
		}
		base, path := mutableCorpus(cfg)
		base.Add(knowledge.Example{
			Input:  args[1],
			Output: answer.Text(strings.Join(args[2:], " ")),
			Weight: 1.0,
		})
		if err := base.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving knowledge: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added. %d examples in %s\n", base.Len(), path)
	case "remove":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: qamatch knowledge remove <index>")
			os.Exit(1)
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid index: %s\n", args[1])
			os.Exit(1)
		}
		base, path := mutableCorpus(cfg)
		removed, err := base.Remove(idx - 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := base.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving knowledge: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %q. %d examples remain in %s\n", removed.Input, base.Len(), path)
	case "save":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: qamatch knowledge save <path>")
			os.Exit(1)
		}
		examples, err := loadExamples(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading knowledge: %v\n", err)
			os.Exit(1)
		}
		merged := knowledge.New()
		merged.AddAll(examples)
		if err := merged.Save(args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving knowledge: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %d examples to %s\n", merged.Len(), args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown knowledge command: %s\n", args[0])
		os.Exit(1)
	}
}

// mutableCorpus 加载可编辑的语料文件
//
// add/remove 只针对配置的语料文件生效，不触碰内嵌语料与外部存储。
// 文件不存在时从空知识库开始。
func mutableCorpus(cfg *config.Config) (*knowledge.Base, string) {
	path := cfg.Knowledge.Path
	if path == "" {
		fmt.Fprintln(os.Stderr, "knowledge add/remove requires a corpus file; set knowledge.path or QAMATCH_KNOWLEDGE_PATH")
		os.Exit(1)
	}

	base, err := knowledge.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return knowledge.New(), path
		}
		fmt.Fprintf(os.Stderr, "Error loading corpus file: %v\n", err)
		os.Exit(1)
	}
	return base, path
}
