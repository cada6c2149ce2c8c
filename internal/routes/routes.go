package routes

import (
	"github.com/Dittner/DerTutor/internal/config"
	"github.com/Dittner/DerTutor/internal/corpus"
	"github.com/Dittner/DerTutor/internal/handlers"
	"github.com/Dittner/DerTutor/internal/middleware"
	"github.com/Dittner/DerTutor/internal/services"
	"github.com/Dittner/DerTutor/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires the middleware chain, services and routes. Reads are
// public; every mutating verb goes through the auth middleware.
func Setup(db *gorm.DB, cfg *config.Config, corpora *corpus.Corpora) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(120))

	tokens := utils.NewTokenManager(cfg.Token)

	authService := services.NewAuthService(db)
	noteService := services.NewNoteService(db, cfg.Store.Path)
	mediaService := services.NewMediaService(db, cfg.Store.Path)

	authHandler := handlers.NewAuthHandler(authService, tokens, cfg.Token)
	langHandler := handlers.NewLangHandler(db)
	vocHandler := handlers.NewVocHandler(db)
	tagHandler := handlers.NewTagHandler(db)
	noteHandler := handlers.NewNoteHandler(noteService)
	mediaHandler := handlers.NewMediaHandler(mediaService, cfg.Store.MaxUploadSize)
	corpusHandler := handlers.NewCorpusHandler(corpora)

	api := router.Group("/api")

	api.GET("", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ready"})
	})

	public := api.Group("")
	{
		public.POST("/users/auth", authHandler.Login)
		public.POST("/users/logout", authHandler.Logout)

		public.GET("/langs", langHandler.GetLangs)
		public.GET("/langs/full", langHandler.GetLangsFull)
		public.GET("/vocs", vocHandler.GetVocs)
		public.GET("/tags", tagHandler.GetTags)
		public.GET("/notes", noteHandler.GetNote)
		public.GET("/notes/search", noteHandler.SearchNotes)
		public.GET("/media", mediaHandler.GetMediaFiles)
		public.GET("/media/:note_id/:file", mediaHandler.ServeFile)

		corpusGroup := public.Group("/corpus")
		{
			corpusGroup.HEAD("/de_pron/search", corpusHandler.CheckDeAudio)
			corpusGroup.GET("/de_pron/search", corpusHandler.GetDeAudio)
			corpusGroup.HEAD("/en_pron/search", corpusHandler.CheckEnAudio)
			corpusGroup.GET("/en_pron/search", corpusHandler.GetEnAudio)
			corpusGroup.HEAD("/en_ru/search", corpusHandler.CheckTranslation)
			corpusGroup.GET("/en_ru/search", corpusHandler.GetTranslation)
		}
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(db, tokens, cfg.Token.SecureCookies))
	{
		protected.GET("/users", authHandler.GetUsers)
		protected.GET("/users/me", authHandler.GetMe)
		protected.POST("/users/register", authHandler.Register)

		protected.POST("/langs", langHandler.CreateLang)
		protected.PUT("/langs", langHandler.UpdateLang)
		protected.DELETE("/langs", langHandler.DeleteLang)

		protected.POST("/vocs", vocHandler.CreateVoc)
		protected.PUT("/vocs", vocHandler.UpdateVoc)
		protected.PATCH("/vocs/rename", vocHandler.RenameVoc)
		protected.PATCH("/vocs/reorder", vocHandler.ReorderVoc)
		protected.DELETE("/vocs", vocHandler.DeleteVoc)

		protected.POST("/tags", tagHandler.CreateTag)
		protected.PATCH("/tags/rename", tagHandler.RenameTag)
		protected.DELETE("/tags", tagHandler.DeleteTag)

		protected.POST("/notes", noteHandler.CreateNote)
		protected.PUT("/notes", noteHandler.UpdateNote)
		protected.PATCH("/notes/rename", noteHandler.RenameNote)
		protected.DELETE("/notes", noteHandler.DeleteNote)

		protected.POST("/media/uploadfile", mediaHandler.UploadFile)
		protected.DELETE("/media", mediaHandler.DeleteMediaFile)
	}

	return router
}
