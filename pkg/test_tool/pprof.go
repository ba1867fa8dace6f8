package testtool

import (
	"net/http"
	_ "net/http/pprof" // 匯入後會自動註冊 pprof endpoint

	"video_transcode_trigger/pkg/config"
	"video_transcode_trigger/pkg/logger"

	"go.uber.org/zap"
)

// PprofAddr 只在本機開放
const PprofAddr = "127.0.0.1:6060"

// StartPprof 非 production 環境啟動 pprof 監控伺服器
func StartPprof() {
	if config.IsProduction() {
		logger.Log.Info("Production environment detected, pprof is disabled.")
		return
	}

	go func() {
		logger.Log.Info("Starting pprof server", zap.String("addr", PprofAddr))
		if err := http.ListenAndServe(PprofAddr, nil); err != nil {
			logger.Log.Warn("pprof server failed", zap.Error(err))
		}
	}()
}
