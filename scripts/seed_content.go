package main

import (
	"fmt"
	"log"

	"github.com/buxinhealth/website/internal/config"
	"github.com/buxinhealth/website/internal/db"
	"github.com/buxinhealth/website/internal/store"
	"github.com/buxinhealth/website/internal/store/filestore"
	"github.com/buxinhealth/website/internal/store/gormstore"
	"github.com/joho/godotenv"
)

// 内容初始化脚本:向配置的存储后端写入各页面的默认文档,
// 已存在的页面会被跳过,可重复执行。
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var content store.ContentStore
	switch cfg.StorageBackend {
	case config.BackendFile:
		fs, err := filestore.New(cfg.DataDir, cfg.FromEmail)
		if err != nil {
			log.Fatal("文件存储初始化失败:", err)
		}
		content = fs
	default:
		if err := db.Init(cfg.DatabasePath); err != nil {
			log.Fatal("数据库初始化失败:", err)
		}
		content = gormstore.New(db.DB, cfg.FromEmail)
	}

	fmt.Println("开始写入默认页面内容...")

	seeded := 0
	for name, doc := range defaultPages() {
		existing, err := content.GetPage(name)
		if err != nil {
			log.Fatalf("读取页面 %s 失败: %v", name, err)
		}
		if len(existing) > 0 {
			fmt.Printf("页面 %s 已存在,跳过\n", name)
			continue
		}
		if err := content.SavePage(name, doc); err != nil {
			log.Fatalf("写入页面 %s 失败: %v", name, err)
		}
		seeded++
	}

	fmt.Printf("完成,新写入 %d 个页面\n", seeded)
}

func defaultPages() map[string]map[string]any {
	return map[string]map[string]any{
		"index": {
			"title":         "Healthcare Robot",
			"subtitle":      "Robotic care for an aging world",
			"description":   "We build assistive robots that help elderly people live independently.",
			"slider_images": []any{},
		},
		"problem": {
			"title":       "The Problem",
			"subtitle":    "Care demand is outpacing caregivers",
			"description": "Aging populations face a widening gap between care demand and available caregivers.",
			"items":       []any{},
		},
		"solution": {
			"title":       "Our Solution",
			"subtitle":    "Assistive robotics at home",
			"description": "A robotic platform that supports daily living tasks and remote monitoring.",
			"items":       []any{},
		},
		"methodology": {
			"title":       "Methodology",
			"subtitle":    "How we build and validate",
			"description": "Clinical partnerships, iterative field trials and safety-first engineering.",
			"items":       []any{},
		},
		"team": {
			"header_title":       "Our Team",
			"header_description": "The people behind the robot",
			"members":            []any{},
		},
	}
}
