package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/JoisFe/llm-chatbot/appconfig"
	"github.com/JoisFe/llm-chatbot/chain"
	"github.com/JoisFe/llm-chatbot/db"
	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/JoisFe/llm-chatbot/memory"
	"github.com/JoisFe/llm-chatbot/retriever"
	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/ollama/ollama/api"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	// load config file
	ccfgg := &appconfig.AppConfig{}
	err := config.LoadConfig("config.ini", ccfgg)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	ccfgg.ApplyDefaults()

	ollamaClient, err := api.ClientFromEnvironment()
	if err != nil {
		logger.Fatal("Failed to create Ollama client", zap.Error(err))
	}

	llmClient := llm.NewOllamaClientWith(ollamaClient, ccfgg.ChatModel)
	embedder := llm.NewOllamaEmbedder(ollamaClient, ccfgg.EmbeddingModel)

	taxChain := chain.NewChainBuilder().
		WithLLM(llmClient).
		WithRetriever(buildRetriever(ccfgg, embedder)).
		WithStore(memory.NewInMemoryStore(ccfgg.MaxHistoryTurns)).
		WithNumCtx(ccfgg.NumCtx).
		WithMaxTokens(ccfgg.MaxTokens).
		WithTemperature(ccfgg.Temperature).
		WithThreads(ccfgg.NumThreads).
		Build()

	ctx := getCancellableContext()
	runChatLoop(ctx, taxChain)
}

func buildRetriever(ccfgg *appconfig.AppConfig, embedder llm.Embedder) retriever.Retriever {
	switch ccfgg.VectorBackend {
	case "qdrant":
		client, err := qdrant.NewClient(&qdrant.Config{
			Host: ccfgg.QdrantHost,
			Port: ccfgg.QdrantPort,
		})
		if err != nil {
			logger.Fatal("Failed to connect to Qdrant", zap.Error(err))
		}
		return retriever.NewQdrantRetriever(client, embedder, ccfgg.QdrantCollection, ccfgg.TopK)

	case "mongo":
		mongoClient := odm.ProvideMongoClient()
		collection := odm.CollectionOf[db.TaxChunkModel](mongoClient, ccfgg.MongoDatabase)
		return retriever.NewMongoRetriever(collection, embedder, ccfgg.VectorIndexName, ccfgg.TopK)

	default:
		logger.Fatal("Unknown vector backend", zap.String("backend", ccfgg.VectorBackend))
		return nil
	}
}

func runChatLoop(ctx context.Context, taxChain *chain.Chain) {
	sessionID := fmt.Sprintf("cli-%d", time.Now().Unix())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("소득세법 챗봇입니다. 질문을 입력하세요. (Ctrl+C 종료)")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		_, err := taxChain.Ask(ctx, sessionID, question, func(chunk string) error {
			fmt.Print(chunk)
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Request failed", zap.Error(err))
			continue
		}
		fmt.Println()
	}
}

func getCancellableContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	return ctx
}
