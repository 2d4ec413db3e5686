package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorMiddleware エラーハンドリングミドルウェア
// ハンドラ内のパニックを500のJSONレスポンスに変換する
func ErrorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("パニックを回復しました: %v", err)
				debug.PrintStack()
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "サーバーエラーが発生しました",
				})
			}
		}()
		ctx.Next()
	}
}

// CORSMiddleware CORSミドルウェア
// このAPIが実際に使うメソッドとヘッダーだけを許可する
func CORSMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
