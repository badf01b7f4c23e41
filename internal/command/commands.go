package command

// Command is one slash command the bot understands. Template placeholders
// ({players}, {results}, ...) are filled from the data listed in
// RequiresData before the response is sent.
type Command struct {
	ID           string
	Trigger      string
	Description  string
	Template     string
	RequiresData []string
}

var botCommands = []Command{
	{
		ID:          "help",
		Trigger:     "/ajuda",
		Description: "Lista todos os comandos disponíveis",
		Template:    "Comandos disponíveis:\n\n{commandList}\n\nDigite um desses comandos ou faça qualquer pergunta sobre a FURIA! 🐾 🔥",
	},
	{
		ID:           "players",
		Trigger:      "/jogadores",
		Description:  "Exibe o elenco atual do CS:GO",
		Template:     "O elenco atual da FURIA é:\n\n{players}\n\nEsse é o nosso esquadrão! 🐾 🔥",
		RequiresData: []string{"players"},
	},
	{
		ID:           "results",
		Trigger:      "/resultados",
		Description:  "Mostra os resultados recentes da FURIA no CS:GO",
		Template:     "Aqui estão os resultados recentes da FURIA no CS:GO:\n\n{results}\n\nSempre na torcida pelo nosso esquadrão! 🐾 🔥",
		RequiresData: []string{"results"},
	},
	{
		ID:           "last_match",
		Trigger:      "/ultimojogo",
		Description:  "Exibe informações sobre o último jogo da FURIA no CS:GO",
		Template:     "O último jogo da FURIA foi:\n\n{lastMatch}\n\nSempre na torcida pelo nosso esquadrão! 🐾 🔥",
		RequiresData: []string{"lastMatch"},
	},
	{
		ID:           "history",
		Trigger:      "/historia",
		Description:  "Conta a história da FURIA no CS:GO",
		Template:     "{history}\n\nSomos FURIA! 🐾 🔥",
		RequiresData: []string{"history"},
	},
	{
		ID:           "quiz",
		Trigger:      "/quiz",
		Description:  "Inicia um quiz sobre a FURIA",
		Template:     "{quizResponse}",
		RequiresData: []string{"quizResponse"},
	},
	{
		ID:          "social_media",
		Trigger:     "/redes",
		Description: "Mostra as redes sociais da FURIA",
		Template:    "Nossas redes sociais:\n- [link:https://www.instagram.com/furiagg:Instagram]\n- [link:https://x.com/furia:X (Twitter)]\n- [link:https://www.facebook.com/furiagg:Facebook]\n- [link:https://www.youtube.com/channel/UCE4elIT7DqDv545IA71feHg:YouTube]\n- [link:https://www.twitch.tv/furiatv:Twitch]\nFique por dentro de tudo que acontece com os times da FURIA — jogos, bastidores, conteúdos exclusivos e muito mais! Siga os perfis oficiais! 🐾 🔥",
	},
	{
		ID:           "next_matches",
		Trigger:      "/proximosjogos",
		Description:  "Exibe a agenda de próximos jogos da FURIA no CS:GO",
		Template:     "{nextMatches}\n\nFique atento para mais informações em breve! 🐾 🔥",
		RequiresData: []string{"nextMatches"},
	},
	{
		ID:          "bot_info",
		Trigger:     "/bot",
		Description: "Informações sobre o bot",
		Template:    "Eu sou o bot oficial da FURIA! Fui criado para fornecer informações sobre o time, jogadores e resultados. Estou sempre pronto para ajudar os furiosos! 🐾 🔥",
	},
	{
		ID:           "news",
		Trigger:      "/noticias",
		Description:  "Mostra as últimas notícias do cenário de CS",
		Template:     "📰 Últimas notícias do cenário:\n\n{news}\n\nFique ligado, furioso! 🐾 🔥",
		RequiresData: []string{"news"},
	},
}
