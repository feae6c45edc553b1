package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/client"
	"github.com/anishgupta02/receipt-extraction-service/config"
	"github.com/anishgupta02/receipt-extraction-service/handler"
	"github.com/anishgupta02/receipt-extraction-service/service"
	"github.com/anishgupta02/receipt-extraction-service/store"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.LoadConfig()

	// Tesseract v5 needs the tessdata prefix set before the first client
	// is created.
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	pdfProcessor := service.NewPDFProcessor()

	txStore, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open transaction store")
	}
	defer txStore.Close()

	receiptService := service.NewReceiptService(tesseractClient, pdfProcessor, txStore)
	statementService := service.NewStatementService(tesseractClient, pdfProcessor, txStore)

	receiptHandler := handler.NewReceiptHandler(receiptService)
	statementHandler := handler.NewStatementHandler(statementService)
	transactionHandler := handler.NewTransactionHandler(txStore)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Receipt Extraction Service",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/receipts/upload", receiptHandler.UploadReceipt)
		api.POST("/statements/upload", statementHandler.UploadStatement)
		api.GET("/transactions", transactionHandler.ListTransactions)
	}

	log.Info().Str("port", cfg.ServerPort).Msg("starting receipt extraction service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
