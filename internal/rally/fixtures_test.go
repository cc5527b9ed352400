package rally

import "github.com/KirkDiggler/rallied/internal/models"

func karasuno(serving bool) models.Team {
	return models.Team{
		Name:    "Karasuno",
		Serving: serving,
		Players: []models.Player{
			{ID: "karasuno-1", Name: "Kageyama Tobio", Position: 1, Stats: models.Stats{Attack: 70, Block: 65, Serve: 85, Receive: 70, Set: 95, Speed: 75, Jump: 70, Stamina: 80, Technique: 90, Mental: 75}},
			{ID: "karasuno-2", Name: "Nishinoya Yu", Position: 2, Stats: models.Stats{Attack: 35, Block: 40, Serve: 70, Receive: 98, Set: 55, Speed: 90, Jump: 60, Stamina: 95, Technique: 85, Mental: 90}},
			{ID: "karasuno-3", Name: "Hinata Shoyo", Position: 3, Stats: models.Stats{Attack: 80, Block: 60, Serve: 65, Receive: 70, Set: 45, Speed: 95, Jump: 99, Stamina: 85, Technique: 65, Mental: 80}},
			{ID: "karasuno-4", Name: "Tsukishima Kei", Position: 4, Stats: models.Stats{Attack: 75, Block: 95, Serve: 75, Receive: 60, Set: 60, Speed: 65, Jump: 85, Stamina: 70, Technique: 85, Mental: 85}},
			{ID: "karasuno-5", Name: "Asahi Azumane", Position: 5, Stats: models.Stats{Attack: 92, Block: 75, Serve: 80, Receive: 70, Set: 50, Speed: 65, Jump: 80, Stamina: 75, Technique: 80, Mental: 65}},
			{ID: "karasuno-6", Name: "Daichi Sawamura", Position: 6, Stats: models.Stats{Attack: 70, Block: 70, Serve: 75, Receive: 85, Set: 65, Speed: 70, Jump: 70, Stamina: 90, Technique: 80, Mental: 95}},
			{ID: "karasuno-7", Name: "Tanaka Ryunosuke", Position: 7, Stats: models.Stats{Attack: 85, Block: 65, Serve: 75, Receive: 75, Set: 50, Speed: 75, Jump: 75, Stamina: 85, Technique: 70, Mental: 80}},
		},
	}
}

func aobaJohsai(serving bool) models.Team {
	return models.Team{
		Name:    "Aoba Johsai",
		Serving: serving,
		Players: []models.Player{
			{ID: "aoba-1", Name: "Oikawa Tooru", Position: 1, Stats: models.Stats{Attack: 80, Block: 65, Serve: 95, Receive: 75, Set: 98, Speed: 75, Jump: 75, Stamina: 80, Technique: 95, Mental: 90}},
			{ID: "aoba-2", Name: "Watari Shinji", Position: 2, Stats: models.Stats{Attack: 40, Block: 45, Serve: 70, Receive: 90, Set: 60, Speed: 85, Jump: 55, Stamina: 90, Technique: 80, Mental: 80}},
			{ID: "aoba-3", Name: "Iwaizumi Hajime", Position: 3, Stats: models.Stats{Attack: 90, Block: 75, Serve: 80, Receive: 80, Set: 55, Speed: 75, Jump: 80, Stamina: 85, Technique: 85, Mental: 85}},
			{ID: "aoba-4", Name: "Matsukawa Issei", Position: 4, Stats: models.Stats{Attack: 75, Block: 85, Serve: 70, Receive: 65, Set: 50, Speed: 65, Jump: 80, Stamina: 75, Technique: 75, Mental: 75}},
			{ID: "aoba-5", Name: "Hanamaki Takahiro", Position: 5, Stats: models.Stats{Attack: 80, Block: 70, Serve: 75, Receive: 70, Set: 55, Speed: 70, Jump: 75, Stamina: 80, Technique: 75, Mental: 75}},
			{ID: "aoba-6", Name: "Kunimi Akira", Position: 6, Stats: models.Stats{Attack: 65, Block: 60, Serve: 70, Receive: 75, Set: 60, Speed: 75, Jump: 65, Stamina: 85, Technique: 80, Mental: 80}},
			{ID: "aoba-7", Name: "Kindaichi Yutaro", Position: 7, Stats: models.Stats{Attack: 78, Block: 80, Serve: 65, Receive: 60, Set: 45, Speed: 65, Jump: 85, Stamina: 75, Technique: 70, Mental: 70}},
		},
	}
}

func uniformPlayer(id string, value, stamina int) models.Player {
	return models.Player{
		ID:       id,
		Name:     id,
		Position: 1,
		Stats: models.Stats{
			Attack: value, Block: value, Serve: value, Receive: value, Set: value,
			Speed: value, Jump: value, Stamina: stamina, Technique: value, Mental: value,
		},
	}
}
