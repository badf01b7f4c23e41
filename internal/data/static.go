package data

// historyText never changes at runtime, which is why History bypasses the
// cache entirely.
const historyText = "A história da FURIA no CS:GO é marcada por garra, inovação e muita paixão! 🐾🎯 Fundada em 2017 por André Akkari, Jaime Pádua e Cris Guedes, a FURIA nasceu em Uberlândia-MG com a missão de colocar o Brasil no topo do cenário internacional. A equipe rapidamente se destacou pelo seu estilo de jogo agressivo e ousado. Em 2018, a dedicação começou a dar frutos, e em 2019 a FURIA conquistou seu espaço no cenário mundial, alcançando o Top 5 do ranking da HLTV e brilhando em torneios como DreamHack Masters e ECS Finals. Com nomes como KSCERATO, yuurih e arT, o time se consolidou como uma das potências do CS:GO. Desde então, a FURIA segue evoluindo, investindo em novos talentos e emocionando torcidas. 🔥🏆"
