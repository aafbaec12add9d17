package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/scheduler"
	"github.com/fachebot/ai-news-tracker/internal/svc"
)

var (
	configFile = flag.String("f", "etc/config.yaml", "the config file")
	runOnce    = flag.Bool("once", false, "run the tracker once and exit")
)

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 创建调度器
	schedulerInstance := scheduler.NewScheduler(svcCtx)

	// -once 模式：立即执行一次完整流程后退出
	if *runOnce {
		if err := schedulerInstance.RunOnce(context.Background()); err != nil {
			logger.Errorf("[Scheduler] 执行失败: %v", err)
			svcCtx.Close()
			os.Exit(1)
		}
		svcCtx.Close()
		return
	}

	// 启动调度器
	if err := schedulerInstance.Start(); err != nil {
		logger.Fatalf("[Scheduler] 启动调度器失败: %s", err)
	}

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	schedulerInstance.Stop()
	svcCtx.Close()
	logger.Infof("服务已停止")
}
