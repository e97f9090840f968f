/*
 * @Description: 启动引导：安全密钥与 ID 编码器初始化
 */
package bootstrap

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/dsp2b/dsp2b/pkg/config"
	"github.com/dsp2b/dsp2b/pkg/idgen"
)

// EnsureSecurityConfig 确保 JWTSecret 与 IDSeed 均已就绪。
// 首次启动时自动生成并写回配置文件，随后初始化公共 ID 编码器。
// IDSeed 一旦生成就不可再变，否则已发出的公共 ID 将全部失效。
func EnsureSecurityConfig(cfg *config.Config) ([]byte, error) {
	secret := cfg.GetString(config.KeyJWTSecret)
	if secret == "" {
		generated, err := randomHex(32)
		if err != nil {
			return nil, fmt.Errorf("生成 JWT Secret 失败: %w", err)
		}
		if err := cfg.UpdateAndPersist(config.KeyJWTSecret, generated); err != nil {
			return nil, fmt.Errorf("持久化 JWT Secret 失败: %w", err)
		}
		secret = generated
		log.Println("✅ 已生成并保存新的 JWT Secret")
	}

	seed := cfg.GetString(config.KeyIDSeed)
	if seed == "" {
		generated, err := idgen.GenerateRandomSeed()
		if err != nil {
			return nil, fmt.Errorf("生成 IDSeed 失败: %w", err)
		}
		if err := cfg.UpdateAndPersist(config.KeyIDSeed, generated); err != nil {
			return nil, fmt.Errorf("持久化 IDSeed 失败: %w", err)
		}
		seed = generated
		log.Println("✅ 已生成并保存新的 IDSeed")
	}

	if err := idgen.InitSqidsEncoderWithSeed(seed); err != nil {
		return nil, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	return []byte(secret), nil
}

func randomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
