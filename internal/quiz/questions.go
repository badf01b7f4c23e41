package quiz

// Question is one multiple-choice entry of the bank. Correct indexes into
// Options (0 = A).
type Question struct {
	Text        string
	Options     [4]string
	Correct     int
	Explanation string
}

var questions = []Question{
	{
		Text:        "Qual é o animal que representa a FURIA?",
		Options:     [4]string{"Leão", "Onça-pintada", "Lobo", "Tigre"},
		Correct:     1,
		Explanation: "A FURIA é representada por uma onça-pintada, um dos predadores mais poderosos da América do Sul!",
	},
	{
		Text:        "Em que país a FURIA foi fundada?",
		Options:     [4]string{"Argentina", "Estados Unidos", "Brasil", "Portugal"},
		Correct:     2,
		Explanation: "A FURIA foi fundada no Brasil, onde mantém suas raízes e principal torcida!",
	},
	{
		Text:        "Qual jogo levou a FURIA à fama internacional?",
		Options:     [4]string{"League of Legends", "Free Fire", "CS:GO", "Dota 2"},
		Correct:     2,
		Explanation: "Foi através do Counter-Strike: Global Offensive que a FURIA ganhou reconhecimento mundial!",
	},
	{
		Text:        "Quem é o player conhecido por jogadas super agressivas?",
		Options:     [4]string{"KSCERATO", "arT", "yuurih", "FalleN"},
		Correct:     1,
		Explanation: "Andrei 'arT' Piovezan é famoso por seu estilo agressivo e imprevisível de jogo!",
	},
	{
		Text:        "Qual é a cor principal da identidade visual da FURIA?",
		Options:     [4]string{"Azul", "Vermelho", "Roxo", "Preto"},
		Correct:     3,
		Explanation: "O preto é a cor principal da identidade visual da FURIA, simbolizando força e determinação!",
	},
	{
		Text:        "Em que ano a FURIA foi criada?",
		Options:     [4]string{"2015", "2017", "2019", "2020"},
		Correct:     1,
		Explanation: "A FURIA foi fundada em 2017, tornando-se rapidamente uma das principais organizações de eSports do Brasil!",
	},
	{
		Text:        "Qual é o nome do coach lendário da FURIA?",
		Options:     [4]string{"guerri", "Apoka", "zews", "Dead"},
		Correct:     0,
		Explanation: "Nicholas 'guerri' Nogueira é o coach que ajudou a transformar a FURIA em uma potência no CS:GO!",
	},
	{
		Text:        "A FURIA já teve time em quais jogos além de CS e LoL?",
		Options:     [4]string{"Valorant", "StarCraft", "PUBG", "Fortnite"},
		Correct:     0,
		Explanation: "A FURIA expandiu para Valorant, outro FPS tático que se tornou muito popular!",
	},
	{
		Text:        "Qual foi o resultado da FURIA no Major do Rio (2022)?",
		Options:     [4]string{"Campeã", "Vice-campeã", "Semifinalista", "Eliminada na fase de grupos"},
		Correct:     2,
		Explanation: "A FURIA chegou até as semifinais do Major do Rio em 2022, com uma campanha incrível diante da torcida brasileira!",
	},
	{
		Text:        "Quem ficou famoso pelo clutch 1v5 contra a G2?",
		Options:     [4]string{"saffee", "drop", "yuurih", "KSCERATO"},
		Correct:     2,
		Explanation: "Yuri 'yuurih' Santos entrou para a história com esse clutch épico contra a G2 Esports!",
	},
	{
		Text:        "Qual apelido a torcida usa para o time nas redes?",
		Options:     [4]string{"A Onça", "A FERA", "FURIAzuda", "Os Brabos"},
		Correct:     1,
		Explanation: "A torcida costuma chamar o time de 'A FERA' nas redes sociais!",
	},
	{
		Text:        "Em que cidade brasileira nasceu a FURIA?",
		Options:     [4]string{"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Brasília"},
		Correct:     3,
		Explanation: "A FURIA nasceu em Brasília, a capital do Brasil!",
	},
	{
		Text:        "Qual jogador é conhecido por estilo calmo e preciso?",
		Options:     [4]string{"KSCERATO", "arT", "drop", "FalleN"},
		Correct:     0,
		Explanation: "Kaike 'KSCERATO' Cerato é conhecido por sua mira precisa e estilo de jogo calculado!",
	},
	{
		Text:        "Em que ano a FURIA entrou no Top 10 mundial no CS:GO?",
		Options:     [4]string{"2017", "2018", "2019", "2020"},
		Correct:     2,
		Explanation: "Foi em 2019 que a FURIA entrou para o top 10 do ranking mundial de CS:GO!",
	},
	{
		Text:        "Qual foi a primeira line-up da FURIA no CS:GO?",
		Options:     [4]string{"arT, yuurih, VINI, KSCERATO, guerri", "arT, yuurih, ableJ, VINI, RCF", "FalleN, fer, coldzera, TACO, boltz", "drop, saffee, arT, yuurih, KSCERATO"},
		Correct:     1,
		Explanation: "A primeira lineup oficial da FURIA CS:GO contava com arT, yuurih, ableJ, VINI e RCF!",
	},
	{
		Text:        "Em qual campeonato a FURIA venceu a Liquid com virada épica em 2020?",
		Options:     [4]string{"IEM Katowice", "DreamHack Open", "ESL Pro League", "BLAST Premier"},
		Correct:     2,
		Explanation: "Foi na ESL Pro League que a FURIA conseguiu uma virada histórica contra a Team Liquid em 2020!",
	},
	{
		Text:        "Onde fica o centro de treinamento internacional da FURIA?",
		Options:     [4]string{"Alemanha", "Estados Unidos", "Portugal", "Suécia"},
		Correct:     1,
		Explanation: "O centro de treinamento internacional da FURIA fica nos Estados Unidos, em Miami!",
	},
	{
		Text:        "Quem saiu da FURIA em 2023 para jogar na Europa?",
		Options:     [4]string{"VINI", "KSCERATO", "yuurih", "guerri"},
		Correct:     0,
		Explanation: "Vinicius 'VINI' Figueiredo deixou a FURIA em 2023 para seguir carreira na Europa!",
	},
	{
		Text:        "Qual é o lema usado pela torcida da FURIA?",
		Options:     [4]string{"Somos a fera", "Joga e vence", "Vai com tudo", "Caça no sangue"},
		Correct:     0,
		Explanation: "A torcida da FURIA costuma usar o lema 'Somos a fera' para apoiar o time!",
	},
	{
		Text:        "Em qual mapa a FURIA ficou conhecida por execuções agressivas?",
		Options:     [4]string{"Mirage", "Inferno", "Vertigo", "Nuke"},
		Correct:     2,
		Explanation: "A FURIA se destacou por suas execuções agressivas e inovadoras no mapa Vertigo!",
	},
}
