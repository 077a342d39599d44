package shell

const msgWelcome = `Добро пожаловать в приложение для квизов!`

const msgMainMenu = `
1. Войти
2. Зарегистрироваться
3. Управление квизами
4. Выход`

const msgUserMenu = `
1. Начать новый квиз
2. Мои результаты
3. Топ-20 результатов
4. Профиль
5. Настройки
6. Разбор последнего квиза
7. Выйти из аккаунта`

const msgManageMenu = `
1. Создать квиз
2. Редактировать квиз
3. Назад`

const msgSettingsMenu = `
1. Сменить пароль
2. Сменить дату рождения`

const msgSelectOption = `Выберите пункт: `

const msgInvalidOption = `Неверный пункт, попробуйте еще раз.`

const msgEnterLogin = `Введите логин: `

const msgEnterPassword = `Введите пароль: `

const msgEnterDateOfBirth = `Введите дату рождения (гггг-мм-дд): `

const msgLoginSuccess = `Вход выполнен!`

const msgInvalidCredentials = `Неверный логин или пароль.`

const msgLoginTaken = `Этот логин уже занят.`

const msgRegistered = `Регистрация прошла успешно! Теперь можно войти.`

const msgInvalidDate = `Неверный формат даты.`

const msgEnterCategory = `Введите категорию квиза: `

const msgCategoryExists = `Такая категория уже существует.`

const msgCategoryMissing = `Такой категории нет.`

const msgEnterQuestionText = `Введите текст вопроса: `

const msgEnterOptions = `Введите варианты через точку с запятой (;): `

const msgEnterCorrect = `Введите правильные ответы через точку с запятой (;): `

const msgQuizCreated = `Квиз создан!`

const msgEditText = `Новый текст вопроса (пусто - без изменений): `

const msgEditOptions = `Новые варианты через ; (пусто - без изменений): `

const msgEditCorrect = `Новые правильные ответы через ; (пусто - без изменений): `

const msgQuizUpdated = `Квиз обновлен!`

const msgAvailableCategories = `Доступные категории:`

const msgChooseCategory = `Введите категорию или 'mixed' для случайного квиза: `

const msgInvalidCategory = `Неверная категория.`

const msgEnterAnswers = `Введите номера ответов через точку с запятой (;): `

const msgCorrect = `Верно!`

const msgIncorrect = `Неверно.`

const msgQuizSummary = "\nВы ответили правильно на %d из %d вопросов.\n"

const msgNoResults = `Результатов пока нет.`

const msgYourResults = `Ваши результаты:`

const msgTopResults = `Топ-20 результатов:`

const msgNewPassword = `Введите новый пароль: `

const msgPasswordUpdated = `Пароль обновлен!`

const msgDateUpdated = `Дата рождения обновлена!`

const msgNoTranscript = `Разбора последнего квиза нет.`

const msgFailure = `Не удалось выполнить операцию: %v\n`

const msgGoodbye = `До свидания!`
