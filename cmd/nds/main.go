package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/config"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/errs"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/logger"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/models"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/nagios"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/netutils"
)

const version = "1.0.0"

// Коды завершения процесса. Отсутствие маркера успеха в ответе cmd.cgi —
// отдельный код: форма ушла, но удалённая система не подтвердила приём.
const (
	exitOK          = 0
	exitFailure     = 1
	exitSoftFailure = 2
)

// "Сборка" и запуск планировщика даунтайма.
func main() {
	os.Exit(run())
}

func run() (code int) {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
			code = exitFailure
		}
	}()

	// загружаем переменные окружения из .env для локальной разработки,
	// отсутствие файла не ошибка
	_ = godotenv.Load()

	// инициализация конфигурации из флагов, окружения и файла настроек
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	if cfg.Version {
		fmt.Println("nagios-downtime-scheduler v" + version)
		return exitOK
	}

	// инициализация логгера с уровнем логирования из конфигурации
	logger.InitLogger(cfg.LogLevel, cfg.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Log.(*logger.SlogAdapter).Close()

	// валидация до какой-либо сетевой активности
	if err := cfg.Validate(); err != nil {
		logger.Log.Error("Конфигурация не прошла валидацию", logger.String("err", err.Error()))
		fmt.Println("Даунтайм не запланирован:", err)
		return exitFailure
	}

	// длина комментария рекомендательная, как в cmd.cgi
	if utf8.RuneCountInString(cfg.Message) > models.MessageAdvisoryLen {
		logger.Log.Warn("Комментарий длиннее рекомендуемых 40 символов",
			logger.Int("len", utf8.RuneCountInString(cfg.Message)))
	}

	// контекст, отменяемый по сигналу остановки
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// опциональная предварительная проверка доступности сервера
	if cfg.Ping {
		checker := netutils.NewNetworkChecker()
		if !checker.IsReachable(ctx, cfg.Server, cfg.EffectivePort(), cfg.Timeout) {
			err := errs.NewErrConnection(cfg.BaseURL(), fmt.Errorf("сервер не отвечает на предварительную проверку"))
			logger.Log.Error("Предварительная проверка не пройдена", logger.String("err", err.Error()))
			fmt.Println("Даунтайм не запланирован:", err)
			return exitFailure
		}

		logger.Log.Debug("Предварительная проверка пройдена", logger.String("server", cfg.Server))
	}

	// время начала: флаг --start или текущий момент
	start := time.Now()
	if cfg.Start != 0 {
		start = time.Unix(cfg.Start, 0)
	}

	req := models.DowntimeRequest{
		Hostname: cfg.Hostname,
		Message:  cfg.Message,
		Start:    start,
		Duration: time.Duration(cfg.Duration) * time.Second,
	}

	profile := nagios.Nagios3Profile()
	profile.CGIPath = cfg.CGIPath
	profile.Author = cfg.Author
	profile.SuccessMarker = cfg.SuccessMarker

	transport := nagios.NewHTTPTransport(cfg.User, cfg.Password, cfg.Timeout)
	submitter := nagios.NewSubmitter(transport, cfg.BaseURL(), profile, cfg.Location())

	result, err := submitter.Submit(ctx, req)
	if err != nil {
		logger.Log.Error("Планирование даунтайма не удалось", logger.String("err", err.Error()))
		fmt.Println("Даунтайм не запланирован:", err)
		return exitFailure
	}

	if !result.Success {
		logger.Log.Warn("Ответ cmd.cgi не содержит маркер успеха",
			logger.String("marker", result.Marker),
			logger.Int("body_len", len(result.Body)),
		)
		fmt.Printf("Даунтайм не подтверждён: в ответе сервера нет маркера `%s`\n", result.Marker)
		return exitSoftFailure
	}

	fmt.Printf("Даунтайм для хоста %s запланирован: %s — %s\n",
		req.Hostname,
		req.Start.In(cfg.Location()).Format(nagios.TimeLayout),
		req.End().In(cfg.Location()).Format(nagios.TimeLayout),
	)

	return exitOK
}
