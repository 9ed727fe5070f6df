package i18n

var ptBR = map[string]string{
	"common.attention": "Atenção",
	"common.error":     "Erro",

	"auth.errors.login":                 "Erro ao fazer login",
	"auth.errors.register":              "Erro ao cadastrar usuário",
	"welcome.alerts.missingCredentials": "Informe usuário e senha",

	"moto.errors.fetch":         "Erro ao buscar moto",
	"moto.errors.fetchByPlate":  "Erro ao buscar moto pela placa",
	"moto.errors.fetchByIot":    "Erro ao buscar moto pelo IoT",
	"moto.errors.fetchBySector": "Erro ao buscar motos do setor",
	"moto.errors.loadAll":       "Erro ao carregar motos",
	"moto.errors.create":        "Erro ao cadastrar moto",
	"moto.errors.update":        "Erro ao atualizar moto",
	"moto.errors.delete":        "Erro ao deletar moto",

	"moto.locate.alerts.missingPlate":  "Informe a placa da moto",
	"moto.noPlate.alerts.missingIotId": "Informe o ID do IoT",

	"iot.errors.loadAll": "Erro ao carregar IoTs",
	"iot.errors.fetch":   "Erro ao buscar IoT",
	"iot.errors.create":  "Erro ao criar IoT",
	"iot.errors.update":  "Erro ao atualizar IoT",
	"iot.errors.delete":  "Erro ao deletar IoT",

	"usuario.errors.fetch": "Erro ao buscar usuário",

	"home.options.registerMoto":     "Cadastrar moto",
	"home.options.locateMoto":       "Localizar moto",
	"home.options.selectSector":     "Selecionar setor",
	"home.options.motoWithoutPlate": "Moto sem placa",
	"home.options.toggleTheme":      "Alternar tema",
	"home.options.logout":           "Sair",

	"home.logoutAlert.title":        "Logout",
	"home.logoutAlert.message":      "Você saiu da sua conta.",
	"home.logoutAlert.errorTitle":   "Erro",
	"home.logoutAlert.errorMessage": "Não foi possível sair. Tente novamente.",

	"moto.modelo.MOTTU_E":            "Mottu E",
	"moto.modelo.MOTTU_SPORT":        "Mottu Sport",
	"moto.modelo.MOTTU_POP":          "Mottu Pop",
	"moto.setor.MANUTENCAO":          "Manutenção",
	"moto.setor.COM_PENDENCIA":       "Com pendência",
	"moto.setor.PRONTA_PARA_ALUGUEL": "Pronta para aluguel",

	"validation.modelo.required":        "Modelo é obrigatório",
	"validation.ano.required":           "Ano é obrigatório",
	"validation.ano.numeric":            "Ano deve ser numérico",
	"validation.ano.integer":            "Ano deve ser inteiro",
	"validation.ano.yearmin":            "Ano mínimo é 1900",
	"validation.ano.yearmax":            "Ano inválido",
	"validation.placa.required":         "Placa é obrigatória",
	"validation.placa.placa":            "Placa inválida",
	"validation.moto.id.required":       "ID da moto é obrigatório",
	"validation.email.email":            "Email inválido",
	"validation.username.required":      "Usuário é obrigatório",
	"validation.username.min":           "Usuário deve ter ao menos 3 caracteres",
	"validation.senha.required":         "Senha é obrigatória",
	"validation.senha.min":              "A senha deve ter ao menos 6 caracteres",
	"validation.confirmarsenha.eqfield": "As senhas não conferem",
	"validation.nomecompleto.min":       "Nome deve ter ao menos 3 caracteres",
	"validation.invalid":                "Campo inválido",
}

var en = map[string]string{
	"common.attention": "Attention",
	"common.error":     "Error",

	"auth.errors.login":                 "Could not sign in",
	"auth.errors.register":              "Could not create the account",
	"welcome.alerts.missingCredentials": "Enter username and password",

	"moto.errors.fetch":         "Could not load the motorcycle",
	"moto.errors.fetchByPlate":  "Could not look up the plate",
	"moto.errors.fetchByIot":    "Could not look up the IoT tag",
	"moto.errors.fetchBySector": "Could not load the sector",
	"moto.errors.loadAll":       "Could not load motorcycles",
	"moto.errors.create":        "Could not register the motorcycle",
	"moto.errors.update":        "Could not update the motorcycle",
	"moto.errors.delete":        "Could not delete the motorcycle",

	"moto.locate.alerts.missingPlate":  "Enter the plate",
	"moto.noPlate.alerts.missingIotId": "Enter the IoT id",

	"iot.errors.loadAll": "Could not load IoT tags",
	"iot.errors.fetch":   "Could not load the IoT tag",
	"iot.errors.create":  "Could not create the IoT tag",
	"iot.errors.update":  "Could not update the IoT tag",
	"iot.errors.delete":  "Could not delete the IoT tag",

	"usuario.errors.fetch": "Could not load the user",

	"home.options.registerMoto":     "Register motorcycle",
	"home.options.locateMoto":       "Locate motorcycle",
	"home.options.selectSector":     "Select sector",
	"home.options.motoWithoutPlate": "Motorcycle without plate",
	"home.options.toggleTheme":      "Toggle theme",
	"home.options.logout":           "Log out",

	"home.logoutAlert.title":        "Logout",
	"home.logoutAlert.message":      "You have been signed out.",
	"home.logoutAlert.errorTitle":   "Error",
	"home.logoutAlert.errorMessage": "Could not sign out. Try again.",

	"moto.setor.MANUTENCAO":          "Maintenance",
	"moto.setor.COM_PENDENCIA":       "Pending",
	"moto.setor.PRONTA_PARA_ALUGUEL": "Ready to rent",

	"validation.modelo.required":        "Model is required",
	"validation.ano.required":           "Year is required",
	"validation.ano.numeric":            "Year must be numeric",
	"validation.ano.integer":            "Year must be an integer",
	"validation.ano.yearmin":            "Minimum year is 1900",
	"validation.ano.yearmax":            "Invalid year",
	"validation.placa.required":         "Plate is required",
	"validation.placa.placa":            "Invalid plate",
	"validation.moto.id.required":       "Motorcycle id is required",
	"validation.email.email":            "Invalid email",
	"validation.username.required":      "Username is required",
	"validation.username.min":           "Username must have at least 3 characters",
	"validation.senha.required":         "Password is required",
	"validation.senha.min":              "Password must have at least 6 characters",
	"validation.confirmarsenha.eqfield": "Passwords do not match",
	"validation.nomecompleto.min":       "Name must have at least 3 characters",
	"validation.invalid":                "Invalid field",
}
