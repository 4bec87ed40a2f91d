package level

import "github.com/chessdroid108/TagArena/entity"

// Levels holds the built-in arena tables. Positions are platform/obstacle
// centers in world pixels.
var Levels = []Level{
	{
		Name: "Classic",
		Platforms: []entity.PlatformDef{
			// Bottom platforms
			{X: 200, Y: 500, Width: 250, Type: entity.PlatformRegular},
			{X: 600, Y: 500, Width: 250, Type: entity.PlatformSticky},
			// Middle platforms
			{X: 150, Y: 400, Width: 200, Type: entity.PlatformJump},
			{X: 400, Y: 350, Width: 150, Type: entity.PlatformPassthrough},
			{X: 650, Y: 400, Width: 200, Type: entity.PlatformSpeed},
			// Upper platforms
			{X: 300, Y: 200, Width: 150, Type: entity.PlatformRegular},
			{X: 500, Y: 250, Width: 150, Type: entity.PlatformJump},
			// Small platforms
			{X: 100, Y: 300, Width: 80, Type: entity.PlatformSpeed},
			{X: 700, Y: 300, Width: 80, Type: entity.PlatformSticky},
			{X: 400, Y: 150, Width: 100, Type: entity.PlatformPassthrough},
		},
		Obstacles: []entity.ObstacleDef{
			{X: 400, Y: 450, Kind: entity.ObstacleStatic, Width: 30, Height: 30},
			{X: 300, Y: 300, Kind: entity.ObstacleStatic, Width: 40, Height: 20},
			{X: 500, Y: 200, Kind: entity.ObstacleStatic, Width: 20, Height: 40},
		},
	},
	{
		Name:        "Sky Islands",
		LethalFloor: true,
		Platforms: []entity.PlatformDef{
			// Bottom islands
			{X: 150, Y: 520, Width: 120, Type: entity.PlatformRegular},
			{X: 400, Y: 520, Width: 120, Type: entity.PlatformRegular},
			{X: 650, Y: 520, Width: 120, Type: entity.PlatformRegular},
			// Middle islands
			{X: 250, Y: 420, Width: 120, Type: entity.PlatformJump},
			{X: 550, Y: 420, Width: 120, Type: entity.PlatformSpeed},
			// Upper islands
			{X: 150, Y: 320, Width: 120, Type: entity.PlatformPassthrough},
			{X: 400, Y: 320, Width: 120, Type: entity.PlatformPassthrough},
			{X: 650, Y: 320, Width: 120, Type: entity.PlatformJump},
			// Top islands
			{X: 250, Y: 220, Width: 100, Type: entity.PlatformSticky},
			{X: 550, Y: 220, Width: 100, Type: entity.PlatformSticky},
			// Highest platform
			{X: 400, Y: 120, Width: 120, Type: entity.PlatformJump},
		},
		Obstacles: []entity.ObstacleDef{
			{X: 220, Y: 470, Kind: entity.ObstacleBouncing, Width: 50, Height: 15,
				Bouncing: &entity.BouncingParams{Strength: 18}},
			{X: 580, Y: 470, Kind: entity.ObstacleBouncing, Width: 50, Height: 15,
				Bouncing: &entity.BouncingParams{Strength: 18}},
			{X: 400, Y: 270, Kind: entity.ObstacleBouncing, Width: 50, Height: 15,
				Bouncing: &entity.BouncingParams{Strength: 18}},
			{X: 300, Y: 380, Kind: entity.ObstacleMoving, Width: 30, Height: 30,
				Moving: &entity.MovingParams{Axis: entity.MoveHorizontal, Range: 120, Speed: 1.0}},
			{X: 500, Y: 380, Kind: entity.ObstacleMoving, Width: 30, Height: 30,
				Moving: &entity.MovingParams{Axis: entity.MoveHorizontal, Range: 120, Speed: 1.0}},
		},
	},
	{
		Name: "Urban Playground",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 550, Width: 700, Type: entity.PlatformRegular},
			{X: 200, Y: 450, Width: 200, Type: entity.PlatformSpeed},
			{X: 600, Y: 450, Width: 200, Type: entity.PlatformSpeed},
			{X: 400, Y: 350, Width: 350, Type: entity.PlatformPassthrough},
			{X: 150, Y: 250, Width: 150, Type: entity.PlatformJump},
			{X: 650, Y: 250, Width: 150, Type: entity.PlatformJump},
			{X: 400, Y: 150, Width: 300, Type: entity.PlatformSticky},
		},
		Obstacles: []entity.ObstacleDef{
			{X: 150, Y: 350, Kind: entity.ObstacleRotating, Width: 60, Height: 10,
				Rotating: &entity.RotatingParams{Speed: 2.0, NumPoints: 4}},
			{X: 650, Y: 350, Kind: entity.ObstacleRotating, Width: 60, Height: 10,
				Rotating: &entity.RotatingParams{Speed: -2.0, NumPoints: 4}},
			{X: 400, Y: 250, Kind: entity.ObstacleMoving, Width: 40, Height: 20,
				Moving: &entity.MovingParams{Axis: entity.MoveVertical, Range: 80, Speed: 1.0}},
			{X: 250, Y: 350, Kind: entity.ObstacleMoving, Width: 40, Height: 20,
				Moving: &entity.MovingParams{Axis: entity.MoveHorizontal, Range: 100, Speed: 1.0}},
			{X: 550, Y: 350, Kind: entity.ObstacleMoving, Width: 40, Height: 20,
				Moving: &entity.MovingParams{Axis: entity.MoveHorizontal, Range: 100, Speed: 1.0}},
		},
	},
	{
		Name: "Maze Runner",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 550, Width: 700, Type: entity.PlatformRegular},
			{X: 150, Y: 480, Width: 200, Type: entity.PlatformPassthrough},
			{X: 650, Y: 480, Width: 200, Type: entity.PlatformRegular},
			{X: 400, Y: 430, Width: 200, Type: entity.PlatformSticky},
			{X: 200, Y: 380, Width: 200, Type: entity.PlatformRegular},
			{X: 600, Y: 380, Width: 200, Type: entity.PlatformSpeed},
			{X: 150, Y: 330, Width: 200, Type: entity.PlatformJump},
			{X: 400, Y: 280, Width: 200, Type: entity.PlatformPassthrough},
			{X: 650, Y: 330, Width: 200, Type: entity.PlatformRegular},
			{X: 300, Y: 230, Width: 150, Type: entity.PlatformSpeed},
			{X: 500, Y: 230, Width: 150, Type: entity.PlatformJump},
			{X: 400, Y: 170, Width: 350, Type: entity.PlatformRegular},
			// Maze walls
			{X: 50, Y: 400, Width: 80, Type: entity.PlatformSticky},
			{X: 750, Y: 400, Width: 80, Type: entity.PlatformSticky},
			{X: 300, Y: 300, Width: 60, Type: entity.PlatformSticky},
			{X: 500, Y: 300, Width: 60, Type: entity.PlatformSticky},
		},
		Obstacles: []entity.ObstacleDef{
			{X: 400, Y: 350, Kind: entity.ObstacleDamaging, Width: 25, Height: 25,
				Damaging: &entity.DamagingParams{Damage: 1}},
			{X: 200, Y: 265, Kind: entity.ObstacleDamaging, Width: 25, Height: 25,
				Damaging: &entity.DamagingParams{Damage: 1}},
			{X: 600, Y: 265, Kind: entity.ObstacleDamaging, Width: 25, Height: 25,
				Damaging: &entity.DamagingParams{Damage: 1}},
			{X: 400, Y: 215, Kind: entity.ObstacleMoving, Width: 30, Height: 30,
				Moving: &entity.MovingParams{Axis: entity.MoveHorizontal, Range: 150, Speed: 2.0}},
			{X: 550, Y: 400, Kind: entity.ObstacleMoving, Width: 30, Height: 30,
				Moving: &entity.MovingParams{Axis: entity.MoveVertical, Range: 60, Speed: 1.5}},
			{X: 400, Y: 400, Kind: entity.ObstacleRotating, Width: 50, Height: 10,
				Rotating: &entity.RotatingParams{Speed: 3.0, NumPoints: 3}},
		},
	},
	{
		Name: "Obstacle Course",
		Platforms: []entity.PlatformDef{
			{X: 400, Y: 550, Width: 300, Type: entity.PlatformRegular},
			{X: 150, Y: 500, Width: 100, Type: entity.PlatformSticky},
			{X: 250, Y: 450, Width: 80, Type: entity.PlatformSpeed},
			{X: 350, Y: 400, Width: 80, Type: entity.PlatformJump},
			{X: 450, Y: 350, Width: 70, Type: entity.PlatformPassthrough},
			{X: 550, Y: 300, Width: 60, Type: entity.PlatformSticky},
			{X: 400, Y: 250, Width: 50, Type: entity.PlatformSpeed},
			{X: 300, Y: 200, Width: 50, Type: entity.PlatformJump},
			{X: 200, Y: 150, Width: 40, Type: entity.PlatformPassthrough},
			{X: 100, Y: 250, Width: 80, Type: entity.PlatformJump},
			{X: 700, Y: 500, Width: 80, Type: entity.PlatformPassthrough},
		},
		Obstacles: []entity.ObstacleDef{
			{X: 150, Y: 450, Kind: entity.ObstacleBouncing, Width: 40, Height: 15,
				Bouncing: &entity.BouncingParams{Strength: 20}},
			{X: 250, Y: 400, Kind: entity.ObstacleStatic, Width: 35, Height: 35},
			{X: 350, Y: 350, Kind: entity.ObstacleDamaging, Width: 30, Height: 30,
				Damaging: &entity.DamagingParams{Damage: 1}},
			{X: 450, Y: 300, Kind: entity.ObstacleRotating, Width: 45, Height: 10,
				Rotating: &entity.RotatingParams{Speed: 2.5, NumPoints: 3}},
			{X: 550, Y: 250, Kind: entity.ObstacleMoving, Width: 30, Height: 30,
				Moving: &entity.MovingParams{Axis: entity.MoveCircular, Range: 40, Speed: 1.0}},
			{X: 650, Y: 450, Kind: entity.ObstacleMoving, Width: 25, Height: 25,
				Moving: &entity.MovingParams{Axis: entity.MoveVertical, Range: 80, Speed: 2.0}},
			{X: 250, Y: 200, Kind: entity.ObstacleRotating, Width: 60, Height: 10,
				Rotating: &entity.RotatingParams{Speed: -2.0, NumPoints: 4}},
			{X: 450, Y: 150, Kind: entity.ObstacleDamaging, Width: 25, Height: 25,
				Damaging: &entity.DamagingParams{Damage: 1}},
		},
	},
}
