package planetary

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig reads an integrator configuration from a `planetary.toml`
// file in the given directory. Missing keys fall back to DefaultConfig.
//
// Expected layout:
//
//	[integration]
//	method = "rk4"
//	time_step = 3600.0
//	softening = 0.0
//	max_acceleration = 0.0
//	max_velocity = 0.0
//	collision_threshold = 1.0
//
//	[forces]
//	gravity = true
//	relativistic = false
//	tidal = false
//	drag = false
//	radiation = false
//	magnetic = false
func LoadConfig(dir string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetConfigName("planetary")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetDefault("integration.method", def.Method.String())
	v.SetDefault("integration.time_step", def.TimeStep)
	v.SetDefault("integration.softening", def.Softening)
	v.SetDefault("integration.max_acceleration", def.MaxAcceleration)
	v.SetDefault("integration.max_velocity", def.MaxVelocity)
	v.SetDefault("integration.collision_threshold", def.CollisionThreshold)
	v.SetDefault("forces.gravity", def.Gravity)
	v.SetDefault("forces.relativistic", def.Relativistic)
	v.SetDefault("forces.tidal", def.Tidal)
	v.SetDefault("forces.drag", def.Drag)
	v.SetDefault("forces.radiation", def.Radiation)
	v.SetDefault("forces.magnetic", def.Magnetic)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("planetary.toml not found in %s: %s", dir, err)
	}
	method, err := ParseMethod(v.GetString("integration.method"))
	if err != nil {
		return Config{}, err
	}
	return Config{
		TimeStep:           v.GetFloat64("integration.time_step"),
		Method:             method,
		Softening:          v.GetFloat64("integration.softening"),
		MaxAcceleration:    v.GetFloat64("integration.max_acceleration"),
		MaxVelocity:        v.GetFloat64("integration.max_velocity"),
		CollisionThreshold: v.GetFloat64("integration.collision_threshold"),
		Gravity:            v.GetBool("forces.gravity"),
		Relativistic:       v.GetBool("forces.relativistic"),
		Tidal:              v.GetBool("forces.tidal"),
		Drag:               v.GetBool("forces.drag"),
		Radiation:          v.GetBool("forces.radiation"),
		Magnetic:           v.GetBool("forces.magnetic"),
	}, nil
}
