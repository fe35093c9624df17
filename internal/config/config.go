// internal/config/config.go
package config

import (
	"image/color"
	"math"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06
	Title        = "Star Shooter"

	PlayerSpeed       = 320.0 // пикселей в секунду
	PlayerMaxHP       = 5
	PlayerRadius      = 22.0
	PlayerWidth       = 64.0
	PlayerBaseYFactor = 0.82
	PlayerYRange      = 200.0 // Вверх и вниз от базовой линии
	PlayerMaxTilt     = 45.0  // градусы
	PlayerTiltLerp    = 0.18
	PlayerContactWait = 3000 * time.Millisecond
	EnemyContactWait  = 450 * time.Millisecond

	PlayerShieldHP        = 2
	PlayerShieldArc       = 90.0 // градусы
	PlayerShieldThickness = 8.0
	PlayerShieldBaseAngle = 3 * math.Pi / 2

	ShieldThickness = 8.0
	ShieldArc       = 90.0 // градусы

	MaxActiveEnemies  = 2
	SpawnInterval     = 900 * time.Millisecond
	ReplacementBurst  = 2
	EnemySpawnMarginX = 40.0
	EnemySpawnY       = -80.0
	EnemyEdgePadding  = 10.0
	EnemyPushVelocity = 40.0
	EnemyPushDistance = 4.0
	EnemyTurnRate     = 0.02 // радиан за кадр
	EnemyDisplayWidth = 64.0

	EnemyBulletSpeed  = 280.0
	EnemyBulletDamage = 1
	EnemyBulletRadius = 5.0

	PlayerBulletRadius = 4.0

	SurvivalGoal = 5 * time.Minute
	KillGoal     = 25

	// Границы очистки (в пикселях за краем экрана)
	PlayerBulletTopCull   = -60.0
	EnemyBulletTopCull    = -60.0
	EnemyBulletBottomCull = 80.0
	EnemyBottomCull       = 80.0
	PickupBottomCull      = 120.0
	BulletSideMargin      = 60.0

	GearHeal        = 1
	GearFallSpeed   = 70.0
	GearRadius      = 16.0
	ShieldFallSpeed = 60.0
	ShieldRadius    = 18.0

	StarfieldFast = 1.8
	StarfieldSlow = 0.5
	StarfieldLerp = 0.08
	StarLayers    = 5

	ExplosionDuration    = 200 * time.Millisecond
	ExplosionRadius      = 36.0
	DamageNumberDuration = 1000 * time.Millisecond
	DamageNumberRise     = 40.0 // пикселей в секунду
	AmmoFlashDuration    = 800 * time.Millisecond
	FadeDuration         = 0.5 // секунды

	CollisionCellSize = 32

	PoolEnemies       = 30
	PoolPlayerBullets = 60
	PoolEnemyBullets  = 60
	PoolPickups       = 16
	PoolEffects       = 64
)

var (
	BackgroundColor   = color.RGBA{0x1d, 0x21, 0x2d, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDimColor      = color.RGBA{160, 170, 190, 255}
	BlueWeaponColor   = color.RGBA{80, 170, 255, 255}
	RedWeaponColor    = color.RGBA{255, 70, 70, 255}
	EnemyBulletColor  = color.RGBA{255, 200, 60, 255}
	ShieldColor       = color.RGBA{90, 200, 255, 200}
	PlayerShieldColor = color.RGBA{120, 255, 200, 200}
	ExplosionColor    = color.RGBA{255, 160, 60, 255}
	BlueExplosion     = color.RGBA{90, 160, 255, 255}
	DamageTextColor   = color.RGBA{255, 230, 120, 255}
	HealthColor       = color.RGBA{90, 220, 110, 255}
	HealthEmptyColor  = color.RGBA{60, 60, 70, 255}
	ReloadColor       = color.RGBA{255, 190, 80, 255}
	PanelColor        = color.RGBA{20, 24, 36, 230}
	ButtonColor       = color.RGBA{50, 60, 90, 230}
	ButtonHoverColor  = color.RGBA{80, 100, 150, 240}
	GearColor         = color.RGBA{200, 200, 210, 255}
	ShieldPickupColor = color.RGBA{90, 200, 255, 255}
	PlayerColor       = color.RGBA{210, 220, 240, 255}
	EnemyColors       = []color.RGBA{
		{230, 90, 90, 255},   // Gunship
		{200, 120, 255, 255}, // Weaver
		{120, 140, 160, 255}, // Dreadnought
	}
)
