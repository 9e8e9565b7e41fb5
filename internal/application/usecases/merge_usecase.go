package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opinacampo/pesquisa-campo-api/internal/analysis"
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
	"github.com/opinacampo/pesquisa-campo-api/internal/infrastructure/logger"
)

// Erros de uso da mescla, rejeitados antes de qualquer I/O
var (
	ErrMergeMinValores     = errors.New("a mescla exige pelo menos 2 valores de origem distintos")
	ErrMergeValorNovoVazio = errors.New("o valor canônico da mescla não pode ser vazio")
)

// MergeUseCase implementa a mescla de variantes de resposta livre em um valor
// canônico. A operação reescreve o campo da pergunta em cada resposta
// afetada, preservando o formato, e persiste registro a registro.
//
// A mescla NÃO é atômica: cada registro é gravado de forma independente, na
// ordem do snapshot. Uma falha interrompe as gravações restantes e mantém as
// já aplicadas (fail-fast). Reexecutar com os mesmos argumentos é seguro:
// registros já reescritos não casam mais com os valores de origem e são
// pulados, então a operação converge.
type MergeUseCase struct {
	responseStore ResponseStore
	log           *logger.Logger
}

// NewMergeUseCase cria uma nova instância de MergeUseCase
func NewMergeUseCase(responseStore ResponseStore, log *logger.Logger) *MergeUseCase {
	return &MergeUseCase{
		responseStore: responseStore,
		log:           log,
	}
}

// Merge reescreve, em toda resposta da pesquisa que contenha um dos valores
// de origem na pergunta indicada, esse valor pelo valor canônico. Versão > 0
// restringe o alcance à edição correspondente do questionário. Retorna a
// quantidade de registros efetivamente persistidos; em caso de falha parcial
// a contagem acompanha o erro.
func (u *MergeUseCase) Merge(ctx context.Context, surveyID, questionID string, valoresAntigos []string, valorNovo string, versao int) (int, error) {
	valorNovo = analysis.Normalize(valorNovo)
	if valorNovo == "" {
		return 0, ErrMergeValorNovoVazio
	}

	origem := analysis.NewValueSet(valoresAntigos...)
	if len(origem) < 2 {
		return 0, ErrMergeMinValores
	}

	responses, err := u.responseStore.GetResponses(surveyID, map[string]interface{}{})
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar respostas para mescla: %w", err)
	}
	responses = analysis.FilterByVersion(responses, versao)

	operacaoID := uuid.New().String()
	entry := u.log.WithFields(logrus.Fields{
		"operacao_id": operacaoID,
		"pesquisa_id": surveyID,
		"pergunta_id": questionID,
		"valor_novo":  valorNovo,
	})
	entry.WithField("candidatas", len(responses)).Info("iniciando mescla de valores")

	atualizadas := 0
	for i := range responses {
		resp := &responses[i]

		reescrita, mudou := analysis.RewriteAnswer(resp.Answer(questionID), origem, valorNovo)
		if !mudou {
			continue
		}

		// Copiar o mapa antes de reescrever: o snapshot buscado pode estar
		// cacheado e compartilhado com leituras de agregação em andamento
		novo := make(entities.AnswerMap, len(resp.Respostas))
		for k, v := range resp.Respostas {
			novo[k] = v
		}
		novo[questionID] = reescrita

		if err := u.persistWithRetry(ctx, resp.ID, novo); err != nil {
			entry.WithError(err).WithField("atualizadas", atualizadas).
				Error("mescla interrompida por falha de persistência")
			return atualizadas, fmt.Errorf("mescla interrompida após %d atualizações: %w", atualizadas, err)
		}
		atualizadas++
	}

	entry.WithField("atualizadas", atualizadas).Info("mescla concluída")
	return atualizadas, nil
}

// persistWithRetry grava um único registro com retry exponencial limitado
// para erros transitórios. Esgotadas as tentativas, a falha é tratada como
// definitiva e interrompe a mescla.
func (u *MergeUseCase) persistWithRetry(ctx context.Context, responseID string, respostas entities.AnswerMap) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = 10 * time.Second

	return backoff.Retry(func() error {
		return u.responseStore.UpdateAnswers(responseID, respostas)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, 3), ctx))
}
